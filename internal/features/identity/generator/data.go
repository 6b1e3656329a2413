package generator

var maleFirstNames = []string{
	"James", "Robert", "John", "Michael", "David", "William", "Richard", "Joseph",
	"Thomas", "Charles", "Christopher", "Daniel", "Matthew", "Anthony", "Mark", "Donald",
	"Steven", "Paul", "Andrew", "Joshua", "Kenneth", "Kevin", "Brian", "George",
	"Timothy", "Ronald", "Edward", "Jason", "Jeffrey", "Ryan", "Jacob", "Gary",
	"Nicholas", "Eric", "Jonathan", "Stephen", "Larry", "Justin", "Scott", "Brandon",
	"Benjamin", "Samuel", "Raymond", "Gregory", "Frank", "Alexander", "Patrick", "Jack",
	"Dennis", "Jerry", "Tyler", "Aaron", "Jose", "Adam", "Nathan", "Henry",
	"Zachary", "Douglas", "Peter", "Kyle", "Noah", "Ethan", "Jeremy", "Walter",
}

var femaleFirstNames = []string{
	"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan", "Jessica",
	"Sarah", "Karen", "Lisa", "Nancy", "Betty", "Margaret", "Sandra", "Ashley",
	"Kimberly", "Emily", "Donna", "Michelle", "Carol", "Amanda", "Dorothy", "Melissa",
	"Deborah", "Stephanie", "Rebecca", "Sharon", "Laura", "Cynthia", "Kathleen", "Amy",
	"Angela", "Shirley", "Anna", "Brenda", "Pamela", "Emma", "Nicole", "Helen",
	"Samantha", "Katherine", "Christine", "Debra", "Rachel", "Carolyn", "Janet", "Catherine",
	"Maria", "Heather", "Diane", "Ruth", "Julie", "Olivia", "Joyce", "Virginia",
	"Victoria", "Kelly", "Lauren", "Christina", "Joan", "Evelyn", "Judith", "Megan",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
	"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
	"Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young",
	"Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
	"Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
	"Carter", "Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz", "Parker",
	"Cruz", "Edwards", "Collins", "Reyes", "Stewart", "Morris", "Morales", "Murphy",
}

var countries = []string{
	"United States", "Canada", "United Kingdom", "Germany", "France",
	"Spain", "Italy", "Netherlands", "Sweden", "Norway",
	"Denmark", "Ireland", "Australia", "New Zealand", "Japan",
	"South Korea", "Brazil", "Argentina", "Mexico", "Portugal",
	"Austria", "Switzerland", "Belgium", "Finland", "Poland",
}

var states = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
	"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
	"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana",
	"Maine", "Maryland", "Massachusetts", "Michigan", "Minnesota", "Mississippi",
	"Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire", "New Jersey",
	"New Mexico", "New York", "North Carolina", "North Dakota", "Ohio", "Oklahoma",
	"Oregon", "Pennsylvania", "Rhode Island", "South Carolina", "South Dakota", "Tennessee",
	"Texas", "Utah", "Vermont", "Virginia", "Washington", "West Virginia",
	"Wisconsin", "Wyoming",
}

var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
	"Austin", "Jacksonville", "Fort Worth", "Columbus", "Indianapolis",
	"Charlotte", "San Francisco", "Seattle", "Denver", "Nashville",
	"Oklahoma City", "El Paso", "Boston", "Portland", "Las Vegas",
	"Memphis", "Louisville", "Baltimore", "Milwaukee", "Albuquerque",
	"Tucson", "Fresno", "Sacramento", "Mesa", "Kansas City",
	"Atlanta", "Omaha", "Raleigh", "Miami", "Minneapolis",
}

var streetNames = []string{
	"Main", "Oak", "Maple", "Cedar", "Elm", "Pine", "Walnut", "Lake",
	"Hill", "Washington", "Park", "River", "Spring", "Church", "High",
	"Meadow", "Forest", "Sunset", "Valley", "Highland", "Lincoln",
	"Willow", "Birch", "Jackson", "Madison", "Franklin", "Jefferson",
	"Adams", "Monroe", "Cherry", "Chestnut", "Magnolia", "Sycamore",
	"Market", "Broad", "Center", "Union", "Liberty",
}

var streetSuffixes = []string{
	"St", "Ave", "Blvd", "Dr", "Ln", "Ct", "Pl", "Way", "Rd", "Cir",
}

// Temporary email providers that offer public inbox access. Each has its own
// access-URL templating rule, applied in buildAccessURL.
type emailProvider struct {
	domain  string
	baseURL string
}

var emailProviders = []emailProvider{
	{domain: "mailinator.com", baseURL: "https://www.mailinator.com/v4/public/inboxes.jsp?to="},
	{domain: "temp-mail.org", baseURL: "https://temp-mail.org/en/view/"},
	{domain: "dispostable.com", baseURL: "https://www.dispostable.com/inbox/"},
	{domain: "tempmail.plus", baseURL: "https://tempmail.plus/en/#!"},
	{domain: "10minutemail.com", baseURL: "https://10minutemail.com/"},
}

var passportTypes = []string{"Regular", "Diplomatic", "Service", "Emergency"}

var licenseClasses = []string{"A", "B", "C", "D", "M"}

var licenseRestrictions = []string{
	"Corrective Lenses",
	"Outside Mirror",
	"Daytime Driving Only",
	"No Highway Driving",
	"Automatic Transmission",
	"No Passengers",
}

type bank struct {
	name     string
	currency string
}

var banks = []bank{
	{name: "National Bank", currency: "USD"},
	{name: "Metro Credit Union", currency: "USD"},
	{name: "First Federal Bank", currency: "USD"},
	{name: "City Trust", currency: "USD"},
	{name: "Global Banking Corp", currency: "USD"},
}

// Bio building blocks for social profiles.
var jobTitles = []string{
	"Software Engineer", "Product Manager", "Graphic Designer", "Data Analyst",
	"Marketing Specialist", "Account Executive", "Operations Manager", "UX Researcher",
	"Content Strategist", "Financial Advisor", "Project Coordinator", "Sales Director",
}

var jobAreas = []string{
	"Technology", "Marketing", "Design", "Finance", "Operations",
	"Sales", "Research", "Communications", "Analytics", "Strategy",
}

var companies = []string{
	"Brightline Labs", "Northway Group", "Cascade Systems", "Luminar Tech",
	"Harborview Media", "Stonebridge Partners", "Vector Dynamics", "Clearwater Analytics",
	"Summit Forge", "Bluepeak Solutions",
}

var bioPhrases = []string{
	"coffee enthusiast", "weekend hiker", "amateur photographer", "dog person",
	"cat person", "bookworm", "travel addict", "foodie at heart",
	"music lover", "fitness junkie", "plant parent", "podcast listener",
	"aspiring chef", "trivia night regular", "sunset chaser", "city explorer",
}

var loremWords = []string{
	"living", "life", "one", "day", "at", "a", "time", "making", "memories",
	"around", "the", "world", "always", "learning", "something", "new",
	"here", "for", "good", "vibes", "and", "better", "stories", "chasing",
	"dreams", "not", "perfection", "just", "progress", "every", "single",
}
