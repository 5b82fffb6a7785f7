package translation

// Entry maps one term between English and Indonesian
type Entry struct {
	Key string `json:"key"`
	EN  string `json:"en"`
	ID  string `json:"id"`
}

// Ingredients are matched in declaration order
var Ingredients = []Entry{
	// vegetables
	{Key: "tomato", EN: "tomato", ID: "tomat"},
	{Key: "tomatoes", EN: "tomatoes", ID: "tomat"},
	{Key: "onion", EN: "onion", ID: "bawang bombay"},
	{Key: "onions", EN: "onions", ID: "bawang bombay"},
	{Key: "garlic", EN: "garlic", ID: "bawang putih"},
	{Key: "shallot", EN: "shallot", ID: "bawang merah"},
	{Key: "shallots", EN: "shallots", ID: "bawang merah"},
	{Key: "potato", EN: "potato", ID: "kentang"},
	{Key: "potatoes", EN: "potatoes", ID: "kentang"},
	{Key: "carrot", EN: "carrot", ID: "wortel"},
	{Key: "carrots", EN: "carrots", ID: "wortel"},
	{Key: "spinach", EN: "spinach", ID: "bayam"},
	{Key: "cabbage", EN: "cabbage", ID: "kubis"},
	{Key: "cucumber", EN: "cucumber", ID: "mentimun"},
	{Key: "eggplant", EN: "eggplant", ID: "terong"},
	{Key: "bell pepper", EN: "bell pepper", ID: "paprika"},
	{Key: "chili", EN: "chili", ID: "cabai"},
	{Key: "chili pepper", EN: "chili pepper", ID: "cabai"},
	{Key: "corn", EN: "corn", ID: "jagung"},
	{Key: "bean sprouts", EN: "bean sprouts", ID: "tauge"},
	{Key: "green beans", EN: "green beans", ID: "buncis"},
	{Key: "long beans", EN: "long beans", ID: "kacang panjang"},
	{Key: "cassava leaves", EN: "cassava leaves", ID: "daun singkong"},
	{Key: "kale", EN: "kale", ID: "kangkung"},
	{Key: "water spinach", EN: "water spinach", ID: "kangkung"},
	{Key: "morning glory", EN: "morning glory", ID: "kangkung"},

	// fruits
	{Key: "banana", EN: "banana", ID: "pisang"},
	{Key: "bananas", EN: "bananas", ID: "pisang"},
	{Key: "apple", EN: "apple", ID: "apel"},
	{Key: "apples", EN: "apples", ID: "apel"},
	{Key: "orange", EN: "orange", ID: "jeruk"},
	{Key: "oranges", EN: "oranges", ID: "jeruk"},
	{Key: "mango", EN: "mango", ID: "mangga"},
	{Key: "mangoes", EN: "mangoes", ID: "mangga"},
	{Key: "papaya", EN: "papaya", ID: "pepaya"},
	{Key: "watermelon", EN: "watermelon", ID: "semangka"},
	{Key: "pineapple", EN: "pineapple", ID: "nanas"},
	{Key: "avocado", EN: "avocado", ID: "alpukat"},
	{Key: "durian", EN: "durian", ID: "durian"},
	{Key: "rambutan", EN: "rambutan", ID: "rambutan"},
	{Key: "snake fruit", EN: "snake fruit", ID: "salak"},
	{Key: "starfruit", EN: "starfruit", ID: "belimbing"},
	{Key: "guava", EN: "guava", ID: "jambu biji"},
	{Key: "soursop", EN: "soursop", ID: "sirsak"},

	// proteins
	{Key: "chicken", EN: "chicken", ID: "ayam"},
	{Key: "beef", EN: "beef", ID: "daging sapi"},
	{Key: "pork", EN: "pork", ID: "daging babi"},
	{Key: "fish", EN: "fish", ID: "ikan"},
	{Key: "shrimp", EN: "shrimp", ID: "udang"},
	{Key: "egg", EN: "egg", ID: "telur"},
	{Key: "eggs", EN: "eggs", ID: "telur"},
	{Key: "tofu", EN: "tofu", ID: "tahu"},
	{Key: "tempeh", EN: "tempeh", ID: "tempe"},
	{Key: "squid", EN: "squid", ID: "cumi-cumi"},
	{Key: "crab", EN: "crab", ID: "kepiting"},
	{Key: "clams", EN: "clams", ID: "kerang"},
	{Key: "mussels", EN: "mussels", ID: "kerang hijau"},

	// spices and herbs
	{Key: "salt", EN: "salt", ID: "garam"},
	{Key: "pepper", EN: "pepper", ID: "merica"},
	{Key: "sugar", EN: "sugar", ID: "gula"},
	{Key: "turmeric", EN: "turmeric", ID: "kunyit"},
	{Key: "ginger", EN: "ginger", ID: "jahe"},
	{Key: "galangal", EN: "galangal", ID: "lengkuas"},
	{Key: "lemongrass", EN: "lemongrass", ID: "serai"},
	{Key: "bay leaf", EN: "bay leaf", ID: "daun salam"},
	{Key: "bay leaves", EN: "bay leaves", ID: "daun salam"},
	{Key: "kaffir lime leaf", EN: "kaffir lime leaf", ID: "daun jeruk"},
	{Key: "kaffir lime leaves", EN: "kaffir lime leaves", ID: "daun jeruk"},
	{Key: "pandan leaf", EN: "pandan leaf", ID: "daun pandan"},
	{Key: "pandan leaves", EN: "pandan leaves", ID: "daun pandan"},
	{Key: "cinnamon", EN: "cinnamon", ID: "kayu manis"},
	{Key: "nutmeg", EN: "nutmeg", ID: "pala"},
	{Key: "clove", EN: "clove", ID: "cengkeh"},
	{Key: "cloves", EN: "cloves", ID: "cengkeh"},
	{Key: "cardamom", EN: "cardamom", ID: "kapulaga"},
	{Key: "coriander", EN: "coriander", ID: "ketumbar"},
	{Key: "cumin", EN: "cumin", ID: "jintan"},
	{Key: "tamarind", EN: "tamarind", ID: "asam jawa"},

	// staples
	{Key: "rice", EN: "rice", ID: "beras"},
	{Key: "cooked rice", EN: "cooked rice", ID: "nasi"},
	{Key: "sticky rice", EN: "sticky rice", ID: "ketan"},
	{Key: "flour", EN: "flour", ID: "tepung"},
	{Key: "wheat flour", EN: "wheat flour", ID: "tepung terigu"},
	{Key: "rice flour", EN: "rice flour", ID: "tepung beras"},
	{Key: "noodles", EN: "noodles", ID: "mie"},
	{Key: "vermicelli", EN: "vermicelli", ID: "bihun"},
	{Key: "bread", EN: "bread", ID: "roti"},

	// dairy and alternatives
	{Key: "milk", EN: "milk", ID: "susu"},
	{Key: "coconut milk", EN: "coconut milk", ID: "santan"},
	{Key: "cheese", EN: "cheese", ID: "keju"},
	{Key: "butter", EN: "butter", ID: "mentega"},
	{Key: "yogurt", EN: "yogurt", ID: "yogurt"},

	// oils and sauces
	{Key: "oil", EN: "oil", ID: "minyak"},
	{Key: "cooking oil", EN: "cooking oil", ID: "minyak goreng"},
	{Key: "vegetable oil", EN: "vegetable oil", ID: "minyak sayur"},
	{Key: "coconut oil", EN: "coconut oil", ID: "minyak kelapa"},
	{Key: "soy sauce", EN: "soy sauce", ID: "kecap"},
	{Key: "sweet soy sauce", EN: "sweet soy sauce", ID: "kecap manis"},
	{Key: "fish sauce", EN: "fish sauce", ID: "kecap ikan"},
	{Key: "oyster sauce", EN: "oyster sauce", ID: "saus tiram"},
	{Key: "chili sauce", EN: "chili sauce", ID: "sambal"},
	{Key: "vinegar", EN: "vinegar", ID: "cuka"},
	{Key: "shrimp paste", EN: "shrimp paste", ID: "terasi"},
}

// Units of measure
var Units = []Entry{
	{Key: "pieces", EN: "pieces", ID: "buah"},
	{Key: "kg", EN: "kg", ID: "kg"},
	{Key: "g", EN: "g", ID: "g"},
	{Key: "lbs", EN: "lbs", ID: "pon"},
	{Key: "oz", EN: "oz", ID: "ons"},
	{Key: "liters", EN: "liters", ID: "liter"},
	{Key: "ml", EN: "ml", ID: "ml"},
	{Key: "cups", EN: "cups", ID: "gelas"},
	{Key: "tbsp", EN: "tbsp", ID: "sendok makan"},
	{Key: "tsp", EN: "tsp", ID: "sendok teh"},
	{Key: "cans", EN: "cans", ID: "kaleng"},
	{Key: "bottles", EN: "bottles", ID: "botol"},
}

// Categories of pantry items
var Categories = []Entry{
	{Key: "vegetables", EN: "Vegetables", ID: "Sayuran"},
	{Key: "fruits", EN: "Fruits", ID: "Buah-buahan"},
	{Key: "meat", EN: "Meat", ID: "Daging"},
	{Key: "seafood", EN: "Seafood", ID: "Makanan Laut"},
	{Key: "dairy", EN: "Dairy", ID: "Produk Susu"},
	{Key: "grains", EN: "Grains", ID: "Biji-bijian"},
	{Key: "spices", EN: "Spices", ID: "Rempah-rempah"},
	{Key: "herbs", EN: "Herbs", ID: "Bumbu"},
	{Key: "pantry", EN: "Pantry", ID: "Bahan Dapur"},
	{Key: "frozen", EN: "Frozen", ID: "Makanan Beku"},
	{Key: "beverages", EN: "Beverages", ID: "Minuman"},
	{Key: "other", EN: "Other", ID: "Lainnya"},
}
