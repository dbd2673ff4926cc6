package main

// departmentNames is the company's department list.
var departmentNames = []string{
	"Commercial",
	"Customer Success",
	"Finance Legal & Transformation",
	"Makutu",
	"Sci-Net",
	"Managed Services",
	"People",
	"Sales",
	"Technology",
	"Academy",
	"Professional Services",
}

// First-name pools reflect the mix of communities the charity serves.
var (
	maleFirstNames = []string{
		"Oliver", "George", "Noah", "Arthur", "Muhammad", "Leo", "Oscar",
		"Harry", "Archie", "Jack", "Theo", "Freddie", "Alfie", "Kai",
		"Ibrahim", "Yusuf", "Dylan", "Tommy", "Jayden", "Marcus",
		"Krishan", "Aarav", "Emeka", "Tariq", "Luca", "Mateusz",
	}
	femaleFirstNames = []string{
		"Olivia", "Amelia", "Isla", "Ava", "Ivy", "Freya", "Lily",
		"Florence", "Mia", "Willow", "Rosie", "Sophia", "Grace",
		"Fatima", "Aisha", "Zara", "Maya", "Nia", "Priya", "Amara",
		"Chioma", "Yasmin", "Elif", "Zuzanna", "Esme", "Darcie",
	}
	lastNames = []string{
		"Smith", "Jones", "Williams", "Taylor", "Brown", "Davies",
		"Evans", "Wilson", "Thomas", "Johnson", "Khan", "Patel",
		"Ahmed", "Begum", "Ali", "Hussain", "Okafor", "Adeyemi",
		"Kowalski", "Nowak", "O'Brien", "Murphy", "Campbell", "Singh",
		"Kaur", "Osei", "Mensah", "Yilmaz", "Demir", "Walsh",
	}
)

// giftIdeaBand is one seeded suggestion template.
type giftIdeaBand struct {
	minAge, maxAge int
	gender         string
	ideas          []string
}

// giftIdeaBands expand into one gift_ideas row per (age, gender) pair.
var giftIdeaBands = []giftIdeaBand{
	{1, 3, "male", []string{"soft toys", "stacking blocks", "picture books", "toy cars"}},
	{1, 3, "female", []string{"soft toys", "stacking blocks", "picture books", "baby dolls"}},
	{1, 3, "any", []string{"bath toys", "musical toys", "shape sorters"}},
	{4, 6, "male", []string{"lego duplo", "dinosaur figures", "football", "colouring sets"}},
	{4, 6, "female", []string{"craft kits", "dolls", "play kitchen sets", "colouring sets"}},
	{4, 6, "any", []string{"board games", "puzzles", "story books"}},
	{7, 10, "male", []string{"lego sets", "football kit", "remote control car", "adventure books"}},
	{7, 10, "female", []string{"craft kits", "jewellery making sets", "lego friends", "chapter books"}},
	{7, 10, "any", []string{"science kits", "board games", "art supplies"}},
	{11, 13, "male", []string{"football boots", "headphones", "graphic novels", "model kits"}},
	{11, 13, "female", []string{"art supplies", "headphones", "novels", "nail art kits"}},
	{11, 13, "any", []string{"backpacks", "puzzle games", "hoodies"}},
	{14, 16, "male", []string{"wireless earbuds", "gift vouchers", "sports gear", "books"}},
	{14, 16, "female", []string{"wireless earbuds", "gift vouchers", "cosmetics sets", "books"}},
	{14, 16, "any", []string{"beanie and gloves sets", "water bottles", "stationery sets"}},
}
