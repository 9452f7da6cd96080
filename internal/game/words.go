package game

import (
	"math/rand"
	"strings"
)

// Category keys are language-neutral; clients translate them for display.
var Categories = []string{
	"Sport",
	"Food",
	"Shopping",
	"Nature",
	"Destination",
	"Technology",
	"Vehicles",
}

const defaultLanguage = "English"

// Codewords double as session keys and broadcast room names, so they are
// short, pronounceable and easy to relay out loud.
var codewords = map[string][]string{
	"English": {
		"apple", "beach", "cloud", "dance", "earth", "flame", "grace", "happy",
		"jazz", "light", "magic", "night", "ocean", "peace", "queen", "river",
		"smile", "tiger", "unity", "vital", "water", "zebra", "angel", "brave",
		"crown", "dream", "eagle", "faith", "giant", "heart", "island", "jolly",
		"karma", "lucky", "music", "noble", "olive", "pride", "quick", "royal",
		"sweet", "trust", "ultra", "vivid", "witty", "xenon", "young", "zesty",
		"amber", "bliss", "charm", "daisy", "elite", "fancy", "glory", "honor",
		"ivory", "jewel", "kayak", "lemon", "mango", "nifty", "oasis", "piano",
		"quill", "radar", "solar", "tulip", "urban", "vapor", "wheat", "xerox",
		"yacht", "alpha", "beta", "gamma", "delta", "echo",
	},
	"Spanish": {
		"agua", "bella", "casa", "dulce", "flor", "gato", "huevo",
		"isla", "juego", "luna", "mar", "nube", "oso", "paz", "queso",
		"rio", "sol", "tierra", "uva", "vida", "zorro", "amor", "bravo",
		"cielo", "danza", "fuego", "honor", "idea",
		"joven", "kilo", "lago", "miel", "noche", "oro",
		"rosa", "sueno", "tigre", "wifi", "yoga",
		"beso", "canto", "gracia",
		"hora", "karma", "luz", "mundo", "onda",
		"quinta", "risa", "sal", "tren",
		"yema", "zona", "alma", "boca", "cara", "dedo",
	},
	"French": {
		"amour", "belle", "ciel", "doux", "fleur", "heure",
		"ile", "lune", "mer", "nuit", "paix",
		"rose", "terre", "unite", "vie", "zebre", "ange", "brave",
		"dame", "fete", "grace", "ideal",
		"joie", "kilo", "magie", "nature", "ocean", "prince", "quete",
		"reine", "tigre", "wifi", "yoga", "zone",
		"art", "beau", "coeur", "hiver",
		"joli", "karma", "lac", "miel", "neige", "or", "piano",
		"sable", "tulip", "vent", "xenon",
		"yacht", "zeste", "alpha", "beta", "gamma", "delta", "echo",
	},
	"German": {
		"apfel", "biene", "clown", "danke", "erde", "feuer", "haus",
		"insel", "junge", "katz", "licht", "mond", "nacht", "ofen", "quark",
		"rose", "sonne", "tier", "uhr", "vogel", "wald", "zebra", "arm",
		"baum", "dach", "eule", "fisch", "geld", "hand", "idee", "jagd",
		"kalt", "luft", "maus", "nord", "pferd", "rad",
		"see", "wind", "wifi", "yoga", "zahl",
		"adler", "brot", "cafe", "ecke", "faden", "gast", "herz",
		"laut", "alpha", "beta", "gamma", "delta", "echo",
	},
}

var wordDatabase = map[string]map[string][]string{
	"English": {
		"Sport": {
			"football", "basketball", "tennis", "soccer", "baseball", "volleyball", "swimming", "running",
			"cycling", "golf", "hockey", "boxing", "wrestling", "surfing", "skiing", "skating",
			"cricket", "rugby", "badminton", "pingpong", "archery", "fencing", "gymnastics", "diving",
			"rowing", "sailing", "climbing", "jogging", "marathon", "triathlon", "karate", "judo",
			"taekwondo", "yoga", "pilates", "crossfit", "weightlifting", "bodybuilding", "dancing",
			"cheerleading", "lacrosse", "softball", "handball", "waterpolo", "polo",
			"equestrian", "pentathlon", "decathlon", "biathlon",
		},
		"Food": {
			"pizza", "burger", "pasta", "sushi", "taco", "burrito", "sandwich", "salad",
			"soup", "steak", "chicken", "fish", "rice", "bread", "cheese", "butter",
			"apple", "banana", "orange", "strawberry", "grape", "watermelon", "pineapple", "mango",
			"chocolate", "icecream", "cake", "cookie", "donut", "muffin", "pancake", "waffle",
			"coffee", "tea", "juice", "soda", "water", "milk", "yogurt", "cereal",
			"eggs", "bacon", "toast", "bagel", "croissant", "noodles", "ramen", "curry",
			"lasagna", "ravioli",
		},
		"Shopping": {
			"shirt", "pants", "dress", "shoes", "jacket", "hat", "bag", "watch",
			"phone", "laptop", "tablet", "camera", "headphones", "speaker", "charger", "cable",
			"perfume", "makeup", "shampoo", "soap", "towel", "pillow", "blanket", "lamp",
			"vase", "picture", "frame", "book", "notebook", "pen", "pencil", "eraser",
			"backpack", "wallet", "belt", "sunglasses", "jewelry", "ring", "necklace", "bracelet",
			"furniture", "chair", "table", "sofa", "bed", "mirror", "clock", "calendar",
			"gift", "card",
		},
		"Nature": {
			"tree", "flower", "mountain", "river", "ocean", "lake", "forest", "beach",
			"sun", "moon", "star", "cloud", "rain", "snow", "wind", "storm",
			"bird", "butterfly", "bee", "ant", "spider", "snake", "tiger", "lion",
			"elephant", "bear", "deer", "rabbit", "squirrel", "fox", "wolf", "eagle",
			"dolphin", "whale", "shark", "fish", "coral", "shell", "rock", "stone",
			"grass", "leaf", "branch", "root", "seed", "fruit", "berry", "mushroom",
			"cactus", "bamboo",
		},
		"Destination": {
			"paris", "london", "tokyo", "newyork", "dubai", "rome", "barcelona", "amsterdam",
			"sydney", "singapore", "hongkong", "bangkok", "bali", "maldives", "santorini",
			"venice", "prague", "vienna", "berlin", "madrid", "lisbon", "istanbul", "cairo",
			"moscow", "beijing", "seoul", "mumbai", "doha", "abudhabi", "riyadh",
			"cancun", "mexico", "rio", "buenosaires", "lima", "santiago", "bogota", "caracas",
			"nairobi", "casablanca", "tunis", "accra", "lagos", "johannesburg",
			"dublin", "edinburgh",
		},
		"Technology": {
			"computer", "laptop", "phone", "tablet", "smartwatch", "headphones", "speaker", "camera",
			"keyboard", "mouse", "monitor", "printer", "scanner", "router", "modem", "server",
			"software", "app", "website", "internet", "wifi", "bluetooth", "usb", "cable",
			"battery", "charger", "adapter", "memory", "storage", "processor", "graphics", "screen",
			"touchscreen", "display", "resolution", "pixel", "megapixel", "gigabyte", "terabyte", "cloud",
			"email", "password", "username", "account", "profile", "settings", "update", "download",
			"upload", "streaming",
		},
		"Vehicles": {
			"car", "truck", "bus", "motorcycle", "bicycle", "scooter", "skateboard", "rollerblades",
			"train", "subway", "tram", "trolley", "taxi", "limousine", "van",
			"suv", "sedan", "coupe", "convertible", "pickup", "jeep",
			"airplane", "helicopter", "drone", "balloon", "airship", "jet", "rocket", "spaceship",
			"boat", "ship", "yacht", "cruise", "ferry", "submarine", "sailboat", "kayak",
			"canoe", "raft", "surfboard", "jetski", "snowmobile", "atv", "tractor", "bulldozer",
			"excavator", "crane",
		},
	},
	"Spanish": {
		"Sport": {
			"futbol", "baloncesto", "tenis", "voleibol", "natacion", "ciclismo", "golf", "hockey",
			"boxeo", "lucha", "surf", "esqui", "patinaje", "cricket", "rugby", "badminton",
			"pingpong", "tiro", "esgrima", "gimnasia", "clavados", "remo", "vela", "escalada",
			"jogging", "maraton", "triatlon", "karate", "judo", "taekwondo", "yoga", "pilates",
			"crossfit", "levantamiento", "culturismo", "danza", "porristas", "lacrosse", "softbol",
			"balonmano", "waterpolo", "polo", "ecuestre", "pentatlon", "decatlon",
			"biatlon", "atletismo", "carrera", "salto", "jabalina",
		},
		"Food": {
			"pizza", "hamburguesa", "pasta", "sushi", "taco", "burrito", "sandwich", "ensalada",
			"sopa", "bistec", "pollo", "pescado", "arroz", "pan", "queso", "mantequilla",
			"manzana", "platano", "naranja", "fresa", "uva", "sandia", "pina", "mango",
			"chocolate", "helado", "pastel", "galleta", "donut", "muffin", "panqueque", "waffle",
			"cafe", "te", "jugo", "refresco", "agua", "leche", "yogur", "cereal",
			"huevos", "tocino", "tostada", "bagel", "croissant", "fideos", "ramen", "curry",
			"lasana", "ravioli",
		},
		"Shopping": {
			"camisa", "pantalon", "vestido", "zapatos", "chaqueta", "sombrero", "bolsa", "reloj",
			"telefono", "laptop", "tableta", "camara", "audifonos", "altavoz", "cargador", "cable",
			"perfume", "maquillaje", "champu", "jabon", "toalla", "almohada", "manta", "lampara",
			"florero", "cuadro", "marco", "libro", "cuaderno", "pluma", "lapiz", "borrador",
			"mochila", "cartera", "cinturon", "gafas", "joyeria", "anillo", "collar", "pulsera",
			"mueble", "silla", "mesa", "sofa", "cama", "espejo", "calendario",
			"regalo", "tarjeta",
		},
		"Nature": {
			"arbol", "flor", "montana", "rio", "oceano", "lago", "bosque", "playa",
			"sol", "luna", "estrella", "nube", "lluvia", "nieve", "viento", "tormenta",
			"pajaro", "mariposa", "abeja", "hormiga", "arana", "serpiente", "tigre", "leon",
			"elefante", "oso", "ciervo", "conejo", "ardilla", "zorro", "lobo", "aguila",
			"delfin", "ballena", "tiburon", "pez", "coral", "concha", "roca", "piedra",
			"hierba", "hoja", "rama", "raiz", "semilla", "fruta", "baya", "hongo",
			"cactus", "bambu",
		},
		"Destination": {
			"paris", "londres", "tokio", "nuevayork", "dubai", "roma", "barcelona", "amsterdam",
			"sydney", "singapur", "hongkong", "bangkok", "bali", "maldivas", "santorini", "venecia",
			"praga", "viena", "berlin", "madrid", "lisboa", "estambul", "cairo", "moscu",
			"pekin", "seul", "mumbai", "doha", "abudhabi", "riyadh", "cancun", "mexico",
			"rio", "buenosaires", "lima", "santiago", "bogota", "caracas", "nairobi",
			"casablanca", "tunez", "accra", "lagos", "johannesburg", "dublin", "edimburgo",
			"atenas", "estocolmo",
		},
		"Technology": {
			"computadora", "laptop", "telefono", "tableta", "reloj", "audifonos", "altavoz", "camara",
			"teclado", "raton", "monitor", "impresora", "escaner", "router", "modem", "servidor",
			"software", "aplicacion", "sitio", "internet", "wifi", "bluetooth", "usb", "cable",
			"bateria", "cargador", "adaptador", "memoria", "almacenamiento", "procesador", "graficos", "pantalla",
			"tactil", "resolucion", "pixel", "megapixel", "gigabyte", "terabyte", "nube",
			"correo", "contrasena", "usuario", "cuenta", "perfil", "configuracion", "actualizacion", "descarga",
			"subida", "transmision",
		},
		"Vehicles": {
			"coche", "camion", "autobus", "motocicleta", "bicicleta", "scooter", "patineta", "patines",
			"tren", "metro", "tranvia", "trolebus", "taxi", "limusina", "furgoneta",
			"suv", "sedan", "coupe", "convertible", "pickup", "jeep",
			"avion", "helicoptero", "dron", "globo", "dirigible", "jet", "cohete", "nave",
			"barco", "buque", "yate", "crucero", "ferry", "submarino", "velero", "kayak",
			"canoa", "balsa", "tabla", "moto", "motonieve", "atv", "tractor", "bulldozer",
			"excavadora", "grua",
		},
	},
	"French": {
		"Sport": {
			"football", "basketball", "tennis", "volley", "natation", "cyclisme", "golf", "hockey",
			"boxe", "lutte", "surf", "ski", "patinage", "cricket", "rugby", "badminton",
			"pingpong", "tir", "escrime", "gymnastique", "plongeon", "aviron", "voile", "escalade",
			"jogging", "marathon", "triathlon", "karate", "judo", "taekwondo", "yoga", "pilates",
			"crossfit", "halterophilie", "bodybuilding", "danse", "lacrosse", "softball",
			"handball", "waterpolo", "polo", "equestre", "pentathlon", "decathlon",
			"biathlon", "athletisme", "course", "saut", "javelot",
		},
		"Food": {
			"pizza", "burger", "pates", "sushi", "taco", "burrito", "sandwich", "salade",
			"soupe", "steak", "poulet", "poisson", "riz", "pain", "fromage", "beurre",
			"pomme", "banane", "orange", "fraise", "raisin", "pasteque", "ananas", "mangue",
			"chocolat", "glace", "gateau", "biscuit", "donut", "muffin", "crepe", "gaufre",
			"cafe", "the", "jus", "soda", "eau", "lait", "yaourt", "cereale",
			"oeufs", "bacon", "toast", "bagel", "croissant", "nouilles", "ramen", "curry",
			"lasagne", "ravioli",
		},
		"Shopping": {
			"chemise", "pantalon", "robe", "chaussures", "veste", "chapeau", "sac", "montre",
			"telephone", "ordinateur", "tablette", "ecouteurs", "hautparleur", "chargeur", "cable",
			"parfum", "maquillage", "shampooing", "savon", "serviette", "oreiller", "couverture", "lampe",
			"vase", "tableau", "cadre", "livre", "cahier", "stylo", "crayon", "gomme",
			"portefeuille", "ceinture", "lunettes", "bijoux", "bague", "collier", "bracelet",
			"meuble", "chaise", "table", "canape", "lit", "miroir", "horloge", "calendrier",
			"cadeau", "carte",
		},
		"Nature": {
			"arbre", "fleur", "montagne", "riviere", "ocean", "lac", "foret", "plage",
			"soleil", "lune", "etoile", "nuage", "pluie", "neige", "vent", "tempete",
			"oiseau", "papillon", "abeille", "fourmi", "araignee", "serpent", "tigre", "lion",
			"elephant", "ours", "cerf", "lapin", "ecureuil", "renard", "loup", "aigle",
			"dauphin", "baleine", "requin", "poisson", "corail", "coquillage", "roche", "pierre",
			"herbe", "feuille", "branche", "racine", "graine", "fruit", "baie", "champignon",
			"cactus", "bambou",
		},
		"Destination": {
			"paris", "londres", "tokyo", "newyork", "dubai", "rome", "barcelone", "amsterdam",
			"sydney", "singapour", "hongkong", "bangkok", "bali", "maldives", "santorini", "venise",
			"prague", "vienne", "berlin", "madrid", "lisbonne", "istanbul", "lecaire", "moscou",
			"pekin", "seoul", "mumbai", "doha", "abudhabi", "riyad", "cancun", "mexique",
			"rio", "buenosaires", "lima", "santiago", "bogota", "caracas", "nairobi",
			"casablanca", "tunis", "accra", "lagos", "johannesburg", "dublin", "edimbourg",
			"athenes", "stockholm",
		},
		"Technology": {
			"ordinateur", "laptop", "telephone", "tablette", "montre", "ecouteurs", "hautparleur",
			"clavier", "souris", "moniteur", "imprimante", "scanner", "routeur", "modem", "serveur",
			"logiciel", "application", "site", "internet", "wifi", "bluetooth", "usb", "cable",
			"batterie", "chargeur", "adaptateur", "memoire", "stockage", "processeur", "graphiques", "ecran",
			"tactile", "affichage", "resolution", "pixel", "megapixel", "gigaoctet", "teraoctet", "nuage",
			"email", "motdepasse", "utilisateur", "compte", "profil", "parametres", "miseajour",
			"telechargement", "diffusion",
		},
		"Vehicles": {
			"voiture", "camion", "bus", "moto", "velo", "scooter", "skateboard", "rollers",
			"train", "metro", "tramway", "trolley", "taxi", "limousine", "van",
			"suv", "berline", "coupe", "cabriolet", "pickup", "jeep",
			"avion", "helicoptere", "drone", "ballon", "dirigeable", "jet", "fusee", "vaisseau",
			"bateau", "navire", "yacht", "croisiere", "ferry", "sousmarin", "voilier", "kayak",
			"canoe", "radeau", "planche", "jetski", "tracteur", "bulldozer",
			"pelleteuse", "grue",
		},
	},
	"German": {
		"Sport": {
			"fussball", "basketball", "tennis", "volleyball", "schwimmen", "radfahren", "golf", "hockey",
			"boxen", "ringen", "surfen", "ski", "eislaufen", "cricket", "rugby", "badminton",
			"tischtennis", "schiessen", "fechten", "turnen", "tauchen", "rudern", "segeln", "klettern",
			"joggen", "marathon", "triathlon", "karate", "judo", "taekwondo", "yoga", "pilates",
			"crossfit", "gewichtheben", "bodybuilding", "tanzen", "cheerleading", "lacrosse", "softball",
			"handball", "wasserball", "polo", "reiten", "fuenfkampf", "zehnkampf",
			"biathlon", "leichtathletik", "laufen", "springen", "speer",
		},
		"Food": {
			"pizza", "burger", "pasta", "sushi", "taco", "burrito", "sandwich", "salat",
			"suppe", "steak", "huhn", "fisch", "reis", "brot", "kaese", "butter",
			"apfel", "banane", "orange", "erdbeere", "traube", "wassermelone", "ananas", "mango",
			"schokolade", "eis", "kuchen", "keks", "donut", "muffin", "pfannkuchen", "waffel",
			"kaffee", "tee", "saft", "limonade", "wasser", "milch", "joghurt", "muesli",
			"eier", "speck", "toast", "bagel", "croissant", "nudeln", "ramen", "curry",
			"lasagne", "ravioli",
		},
		"Shopping": {
			"hemd", "hose", "kleid", "schuhe", "jacke", "hut", "tasche", "uhr",
			"telefon", "laptop", "tablet", "kamera", "kopfhoerer", "lautsprecher", "ladegeraet", "kabel",
			"parfum", "makeup", "shampoo", "seife", "handtuch", "kissen", "decke", "lampe",
			"vase", "bild", "rahmen", "buch", "heft", "stift", "bleistift", "radiergummi",
			"rucksack", "brieftasche", "guertel", "sonnenbrille", "schmuck", "ring", "halskette", "armband",
			"moebel", "stuhl", "tisch", "sofa", "bett", "spiegel", "kalender",
			"geschenk", "karte",
		},
		"Nature": {
			"baum", "blume", "berg", "fluss", "ozean", "see", "wald", "strand",
			"sonne", "mond", "stern", "wolke", "regen", "schnee", "wind", "sturm",
			"vogel", "schmetterling", "biene", "ameise", "spinne", "schlange", "tiger", "loewe",
			"elefant", "baer", "hirsch", "hase", "eichhoernchen", "fuchs", "wolf", "adler",
			"delfin", "wal", "hai", "fisch", "koralle", "muschel", "fels", "stein",
			"gras", "blatt", "ast", "wurzel", "samen", "frucht", "beere", "pilz",
			"kaktus", "bambus",
		},
		"Destination": {
			"paris", "london", "tokio", "newyork", "dubai", "rom", "barcelona", "amsterdam",
			"sydney", "singapur", "hongkong", "bangkok", "bali", "malediven", "santorini", "venedig",
			"prag", "wien", "berlin", "madrid", "lissabon", "istanbul", "kairo", "moskau",
			"peking", "seoul", "mumbai", "doha", "abudhabi", "riyadh", "cancun", "mexiko",
			"rio", "buenosaires", "lima", "santiago", "bogota", "caracas", "nairobi",
			"casablanca", "tunis", "accra", "lagos", "johannesburg", "dublin", "edinburgh",
			"athen", "stockholm",
		},
		"Technology": {
			"computer", "laptop", "telefon", "tablet", "smartwatch", "kopfhoerer", "lautsprecher", "kamera",
			"tastatur", "maus", "monitor", "drucker", "scanner", "router", "modem", "server",
			"software", "app", "website", "internet", "wifi", "bluetooth", "usb", "kabel",
			"batterie", "ladegeraet", "adapter", "speicher", "prozessor", "grafik", "bildschirm",
			"touchscreen", "anzeige", "aufloesung", "pixel", "megapixel", "gigabyte", "terabyte", "wolke",
			"email", "passwort", "benutzername", "konto", "profil", "einstellungen", "update", "download",
			"upload", "streaming",
		},
		"Vehicles": {
			"auto", "lkw", "bus", "motorrad", "fahrrad", "roller", "skateboard",
			"zug", "ubahn", "strassenbahn", "trolley", "taxi", "limousine", "van",
			"suv", "coupe", "cabrio", "pickup", "jeep",
			"flugzeug", "hubschrauber", "drohne", "ballon", "luftschiff", "jet", "rakete", "raumschiff",
			"boot", "schiff", "yacht", "kreuzfahrt", "faehre", "uboot", "segelschiff", "kajak",
			"kanu", "floss", "surfbrett", "jetski", "schneemobil", "atv", "traktor", "bulldozer",
			"bagger", "kran",
		},
	},
}

// NewCodeword draws a random short word from the given language's list,
// lower-cased for use as a session key and room name. Codewords are not
// de-duplicated against active sessions.
func NewCodeword(language string) string {
	words, ok := codewords[language]
	if !ok {
		words = codewords[defaultLanguage]
	}
	return strings.ToLower(words[rand.Intn(len(words))])
}

// RandomCategory returns one of the fixed category keys.
func RandomCategory() string {
	return Categories[rand.Intn(len(Categories))]
}

// RandomWordFromCategory draws a random word from the per-language category
// table. Unknown languages fall back to English; an unknown category yields
// the empty string.
func RandomWordFromCategory(category, language string) string {
	tables, ok := wordDatabase[language]
	if !ok {
		tables = wordDatabase[defaultLanguage]
	}
	words := tables[category]
	if len(words) == 0 {
		return ""
	}
	return words[rand.Intn(len(words))]
}

// GenerateWordPool builds numPlayers*wordsPerPlayer entries with random
// categories, used when players do not enter their own words.
func GenerateWordPool(numPlayers, wordsPerPlayer int, language string) []WordEntry {
	total := numPlayers * wordsPerPlayer
	pool := make([]WordEntry, 0, total)
	for i := 0; i < total; i++ {
		category := RandomCategory()
		word := RandomWordFromCategory(category, language)
		if word == "" {
			continue
		}
		pool = append(pool, WordEntry{Word: word, Category: category})
	}
	return pool
}
