package generator

import (
	"fmt"
	"math"
	"time"

	"metchera-backend/internal/features/identity/models"
)

// creditCardProbability of 0.7 matches the share of identities that carry a
// card at all.
const creditCardProbability = 0.7

var cardTypes = []string{models.CardVisa, models.CardMastercard, models.CardAmex, models.CardDiscover}

func (g *Generator) banking() models.Banking {
	selected := banks[g.rng.Intn(len(banks))]

	balance := 100 + g.rng.Float64()*(50000-100)
	balance = math.Round(balance*100) / 100

	b := models.Banking{
		BankName:      selected.name,
		AccountNumber: g.digits(10),
		RoutingNumber: g.digits(9),
		AccountType:   g.pick([]string{models.AccountTypeChecking, models.AccountTypeSavings}),
		Balance:       balance,
		Currency:      selected.currency,
	}

	if g.rng.Float64() < creditCardProbability {
		b.CreditCard = g.creditCard()
	}

	return b
}

// creditCard builds a card whose leading digits conform to its declared
// network and whose display grouping and CVV length follow network rules
// (4-6-5 and 4-digit CVV for amex, 4-4-4-4 and 3 digits otherwise).
func (g *Generator) creditCard() *models.CreditCard {
	cardType := g.pick(cardTypes)

	var number string
	switch cardType {
	case models.CardVisa:
		number = "4" + g.digits(15)
	case models.CardMastercard:
		number = fmt.Sprintf("5%d%s", g.intn(1, 5), g.digits(14))
	case models.CardAmex:
		number = "3" + g.pick([]string{"4", "7"}) + g.digits(13)
	case models.CardDiscover:
		number = "6011" + g.digits(12)
	}

	var formatted string
	if cardType == models.CardAmex {
		formatted = number[0:4] + "-" + number[4:10] + "-" + number[10:]
	} else {
		formatted = number[0:4] + "-" + number[4:8] + "-" + number[8:12] + "-" + number[12:]
	}

	cvvLen := 3
	if cardType == models.CardAmex {
		cvvLen = 4
	}

	expiry := time.Now().AddDate(g.intn(1, 5), 0, 0)

	return &models.CreditCard{
		Number:     formatted,
		ExpiryDate: expiry.Format("01/06"),
		CVV:        g.digits(cvvLen),
		Type:       cardType,
	}
}
