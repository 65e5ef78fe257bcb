package catalog

import "GemScout/internal/domain/models"

// Snapshot of popular KSE-100 instruments with last known reference prices.
// A reference price of 0 would mean "resolve live"; catalog rows always carry
// one, custom searches do not.
var psxInstruments = []models.Instrument{
	// --- Commercial Banks ---
	{Symbol: "MEBL", Name: "Meezan Bank Limited", Sector: "Commercial Banks", ReferencePrice: 265.50, LastUpdated: "2025-02-27"},
	{Symbol: "MCB", Name: "MCB Bank Limited", Sector: "Commercial Banks", ReferencePrice: 235.25, LastUpdated: "2025-02-27"},
	{Symbol: "UBL", Name: "United Bank Limited", Sector: "Commercial Banks", ReferencePrice: 240.80, LastUpdated: "2025-02-27"},
	{Symbol: "HBL", Name: "Habib Bank Limited", Sector: "Commercial Banks", ReferencePrice: 122.40, LastUpdated: "2025-02-27"},
	{Symbol: "BAHL", Name: "Bank Al Habib", Sector: "Commercial Banks", ReferencePrice: 98.60, LastUpdated: "2025-02-27"},
	{Symbol: "FABL", Name: "Faysal Bank Limited", Sector: "Commercial Banks", ReferencePrice: 45.30, LastUpdated: "2025-02-27"},
	{Symbol: "BAFL", Name: "Bank Alfalah", Sector: "Commercial Banks", ReferencePrice: 62.15, LastUpdated: "2025-02-27"},
	{Symbol: "AKBL", Name: "Askari Bank", Sector: "Commercial Banks", ReferencePrice: 24.50, LastUpdated: "2025-02-27"},
	{Symbol: "NBP", Name: "National Bank of Pakistan", Sector: "Commercial Banks", ReferencePrice: 42.10, LastUpdated: "2025-02-27"},

	// --- Oil & Gas Exploration ---
	{Symbol: "OGDC", Name: "Oil & Gas Development Company", Sector: "Oil & Gas Exploration", ReferencePrice: 145.25, LastUpdated: "2025-02-27"},
	{Symbol: "PPL", Name: "Pakistan Petroleum Limited", Sector: "Oil & Gas Exploration", ReferencePrice: 132.60, LastUpdated: "2025-02-27"},
	{Symbol: "MARI", Name: "Mari Petroleum", Sector: "Oil & Gas Exploration", ReferencePrice: 3150.00, LastUpdated: "2025-02-27"},
	{Symbol: "POL", Name: "Pakistan Oilfields", Sector: "Oil & Gas Exploration", ReferencePrice: 425.40, LastUpdated: "2025-02-27"},

	// --- Fertilizer ---
	{Symbol: "ENGRO", Name: "Engro Corporation", Sector: "Fertilizer", ReferencePrice: 365.75, LastUpdated: "2025-02-27"},
	{Symbol: "EFERT", Name: "Engro Fertilizers", Sector: "Fertilizer", ReferencePrice: 175.30, LastUpdated: "2025-02-27"},
	{Symbol: "FFC", Name: "Fauji Fertilizer Company", Sector: "Fertilizer", ReferencePrice: 210.90, LastUpdated: "2025-02-27"},
	{Symbol: "FATIMA", Name: "Fatima Fertilizer", Sector: "Fertilizer", ReferencePrice: 62.40, LastUpdated: "2025-02-27"},
	{Symbol: "FFBL", Name: "Fauji Fertilizer Bin Qasim", Sector: "Fertilizer", ReferencePrice: 34.20, LastUpdated: "2025-02-27"},

	// --- Cement ---
	{Symbol: "LUCK", Name: "Lucky Cement Limited", Sector: "Cement", ReferencePrice: 920.50, LastUpdated: "2025-02-27"},
	{Symbol: "DGKC", Name: "D.G. Khan Cement", Sector: "Cement", ReferencePrice: 78.15, LastUpdated: "2025-02-27"},
	{Symbol: "MLCF", Name: "Maple Leaf Cement", Sector: "Cement", ReferencePrice: 42.40, LastUpdated: "2025-02-27"},
	{Symbol: "CHCC", Name: "Cherat Cement", Sector: "Cement", ReferencePrice: 175.20, LastUpdated: "2025-02-27"},
	{Symbol: "PIOC", Name: "Pioneer Cement", Sector: "Cement", ReferencePrice: 135.50, LastUpdated: "2025-02-27"},
	{Symbol: "FCCL", Name: "Fauji Cement Company", Sector: "Cement", ReferencePrice: 22.75, LastUpdated: "2025-02-27"},
	{Symbol: "KOHC", Name: "Kohat Cement", Sector: "Cement", ReferencePrice: 215.00, LastUpdated: "2025-02-27"},

	// --- Technology & Communication ---
	{Symbol: "SYS", Name: "Systems Limited", Sector: "Technology", ReferencePrice: 410.10, LastUpdated: "2025-02-27"},
	{Symbol: "TRG", Name: "TRG Pakistan", Sector: "Technology", ReferencePrice: 55.50, LastUpdated: "2025-02-27"},
	{Symbol: "AIRLINK", Name: "Air Link Communication", Sector: "Technology", ReferencePrice: 72.90, LastUpdated: "2025-02-27"},
	{Symbol: "AVN", Name: "Avanceon Limited", Sector: "Technology", ReferencePrice: 52.25, LastUpdated: "2025-02-27"},
	{Symbol: "NETSOL", Name: "NetSol Technologies", Sector: "Technology", ReferencePrice: 125.75, LastUpdated: "2025-02-27"},
	{Symbol: "PTC", Name: "Pakistan Telecommunication", Sector: "Technology", ReferencePrice: 12.40, LastUpdated: "2025-02-27"},
	{Symbol: "OCTOPUS", Name: "Octopus Digital", Sector: "Technology", ReferencePrice: 45.60, LastUpdated: "2025-02-27"},

	// --- Power Generation & Distribution ---
	{Symbol: "HUBC", Name: "Hub Power Company", Sector: "Power Generation", ReferencePrice: 135.40, LastUpdated: "2025-02-27"},
	{Symbol: "KAPCO", Name: "Kot Addu Power", Sector: "Power Generation", ReferencePrice: 32.50, LastUpdated: "2025-02-27"},
	{Symbol: "LPL", Name: "Lalpir Power", Sector: "Power Generation", ReferencePrice: 34.10, LastUpdated: "2025-02-27"},
	{Symbol: "NCPL", Name: "Nishat Chunian Power", Sector: "Power Generation", ReferencePrice: 28.30, LastUpdated: "2025-02-27"},
	{Symbol: "KEL", Name: "K-Electric", Sector: "Power Generation", ReferencePrice: 4.85, LastUpdated: "2025-02-27"},

	// --- Oil & Gas Marketing ---
	{Symbol: "PSO", Name: "Pakistan State Oil", Sector: "Oil & Gas Marketing", ReferencePrice: 185.30, LastUpdated: "2025-02-27"},
	{Symbol: "SHEL", Name: "Shell Pakistan", Sector: "Oil & Gas Marketing", ReferencePrice: 165.20, LastUpdated: "2025-02-27"},
	{Symbol: "APL", Name: "Attock Petroleum", Sector: "Oil & Gas Marketing", ReferencePrice: 410.00, LastUpdated: "2025-02-27"},
	{Symbol: "HASCOL", Name: "Hascol Petroleum", Sector: "Oil & Gas Marketing", ReferencePrice: 8.50, LastUpdated: "2025-02-27"},

	// --- Refinery ---
	{Symbol: "ATRL", Name: "Attock Refinery", Sector: "Refinery", ReferencePrice: 340.50, LastUpdated: "2025-02-27"},
	{Symbol: "NRL", Name: "National Refinery", Sector: "Refinery", ReferencePrice: 260.00, LastUpdated: "2025-02-27"},
	{Symbol: "PRL", Name: "Pakistan Refinery", Sector: "Refinery", ReferencePrice: 28.40, LastUpdated: "2025-02-27"},
	{Symbol: "CNERGY", Name: "Cnergyico PK", Sector: "Refinery", ReferencePrice: 4.25, LastUpdated: "2025-02-27"},

	// --- Textile Composite ---
	{Symbol: "ILP", Name: "Interloop Limited", Sector: "Textile Composite", ReferencePrice: 68.50, LastUpdated: "2025-02-27"},
	{Symbol: "NML", Name: "Nishat Mills", Sector: "Textile Composite", ReferencePrice: 82.30, LastUpdated: "2025-02-27"},
	{Symbol: "GATM", Name: "Gul Ahmed Textile", Sector: "Textile Composite", ReferencePrice: 24.60, LastUpdated: "2025-02-27"},
	{Symbol: "KTML", Name: "Kohinoor Textile", Sector: "Textile Composite", ReferencePrice: 75.10, LastUpdated: "2025-02-27"},
	{Symbol: "FASM", Name: "Faisal Spinning", Sector: "Textile Composite", ReferencePrice: 420.00, LastUpdated: "2025-02-27"},

	// --- Pharmaceuticals ---
	{Symbol: "SEARL", Name: "The Searle Company", Sector: "Pharmaceuticals", ReferencePrice: 58.40, LastUpdated: "2025-02-27"},
	{Symbol: "ABOT", Name: "Abbott Laboratories", Sector: "Pharmaceuticals", ReferencePrice: 480.00, LastUpdated: "2025-02-27"},
	{Symbol: "AGP", Name: "AGP Limited", Sector: "Pharmaceuticals", ReferencePrice: 115.20, LastUpdated: "2025-02-27"},
	{Symbol: "HINOON", Name: "Highnoon Laboratories", Sector: "Pharmaceuticals", ReferencePrice: 650.50, LastUpdated: "2025-02-27"},
	{Symbol: "GLAXO", Name: "GlaxoSmithKline", Sector: "Pharmaceuticals", ReferencePrice: 145.00, LastUpdated: "2025-02-27"},

	// --- Automobile Assembler ---
	{Symbol: "SAZEW", Name: "Sazgar Engineering", Sector: "Automobile Assembler", ReferencePrice: 920.15, LastUpdated: "2025-02-27"},
	{Symbol: "INDU", Name: "Indus Motor Company", Sector: "Automobile Assembler", ReferencePrice: 1650.00, LastUpdated: "2025-02-27"},
	{Symbol: "MTL", Name: "Millat Tractors", Sector: "Automobile Assembler", ReferencePrice: 610.50, LastUpdated: "2025-02-27"},
	{Symbol: "HCAR", Name: "Honda Atlas Cars", Sector: "Automobile Assembler", ReferencePrice: 310.30, LastUpdated: "2025-02-27"},
	{Symbol: "PSMC", Name: "Pak Suzuki Motor", Sector: "Automobile Assembler", ReferencePrice: 650.00, LastUpdated: "2025-02-27"},

	// --- Food & Personal Care ---
	{Symbol: "UNITY", Name: "Unity Foods", Sector: "Food & Personal Care", ReferencePrice: 24.50, LastUpdated: "2025-02-27"},
	{Symbol: "FCEPL", Name: "FrieslandCampina Engro", Sector: "Food & Personal Care", ReferencePrice: 110.00, LastUpdated: "2025-02-27"},
	{Symbol: "NESTLE", Name: "Nestle Pakistan", Sector: "Food & Personal Care", ReferencePrice: 7200.00, LastUpdated: "2025-02-27"},
	{Symbol: "PREMA", Name: "At-Tahur Limited", Sector: "Food & Personal Care", ReferencePrice: 32.10, LastUpdated: "2025-02-27"},
	{Symbol: "NATF", Name: "National Foods", Sector: "Food & Personal Care", ReferencePrice: 145.50, LastUpdated: "2025-02-27"},

	// --- Chemicals ---
	{Symbol: "EPCL", Name: "Engro Polymer", Sector: "Chemicals", ReferencePrice: 45.60, LastUpdated: "2025-02-27"},
	{Symbol: "LOTCHEM", Name: "Lotte Chemical", Sector: "Chemicals", ReferencePrice: 28.90, LastUpdated: "2025-02-27"},
	{Symbol: "COLG", Name: "Colgate-Palmolive", Sector: "Chemicals", ReferencePrice: 1450.00, LastUpdated: "2025-02-27"},
	{Symbol: "ICI", Name: "Lucky Core Industries", Sector: "Chemicals", ReferencePrice: 850.00, LastUpdated: "2025-02-27"},

	// --- Engineering & Steel ---
	{Symbol: "ISL", Name: "International Steels", Sector: "Engineering", ReferencePrice: 78.40, LastUpdated: "2025-02-27"},
	{Symbol: "MUGHAL", Name: "Mughal Iron & Steel", Sector: "Engineering", ReferencePrice: 85.20, LastUpdated: "2025-02-27"},
	{Symbol: "ASTL", Name: "Amreli Steels", Sector: "Engineering", ReferencePrice: 25.60, LastUpdated: "2025-02-27"},
	{Symbol: "INIL", Name: "International Industries", Sector: "Engineering", ReferencePrice: 135.00, LastUpdated: "2025-02-27"},
}
