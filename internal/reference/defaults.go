package reference

// Region names shared by every city.
const (
	RegionNorth   = "north"
	RegionSouth   = "south"
	RegionEast    = "east"
	RegionWest    = "west"
	RegionCentral = "central"
)

var allRegions = []string{RegionNorth, RegionSouth, RegionEast, RegionWest, RegionCentral}

// DefaultCatalog returns the compiled-in market tables. Each call returns a
// fresh copy so callers may modify it freely.
func DefaultCatalog() Catalog {
	return Catalog{
		PropertyTypes: []PropertyTypeSpec{
			{Type: Apartment, ArabicName: "شقة", PriceMultiplier: 1.0, BaseSize: 120},
			{Type: Duplex, ArabicName: "دوبلكس", PriceMultiplier: 1.8, BaseSize: 180},
			{Type: Villa, ArabicName: "فيلا", PriceMultiplier: 2.2, BaseSize: 300},
			{Type: Studio, ArabicName: "استوديو", PriceMultiplier: 0.6, BaseSize: 60},
		},
		Cities: []City{
			{
				Name:             "Riyadh",
				ArabicName:       "الرياض",
				AveragePrice:     800000,
				AverageRent:      3500,
				PricePerSqm:      4000,
				InflationRatePct: 6.5,
				Regions:          regions(),
				BaseSizes:        map[PropertyType]float64{Villa: 350},
				Districts: []District{
					{Name: "Al Malqa", ArabicName: "الملقا", Region: RegionNorth, PriceMultiplier: 1.35, DemandScore: 9, GrowthPotential: 8},
					{Name: "Al Narjis", ArabicName: "النرجس", Region: RegionNorth, PriceMultiplier: 1.15, DemandScore: 7, GrowthPotential: 9},
					{Name: "Al Yasmin", ArabicName: "الياسمين", Region: RegionNorth, PriceMultiplier: 1.25, DemandScore: 8, GrowthPotential: 8},
					{Name: "Al Rabwah", ArabicName: "الربوة", Region: RegionEast, PriceMultiplier: 0.85, DemandScore: 6, GrowthPotential: 5},
					{Name: "Al Olaya", ArabicName: "العليا", Region: RegionCentral, PriceMultiplier: 1.5, DemandScore: 10, GrowthPotential: 6},
					{Name: "Al Hamra", ArabicName: "الحمراء", Region: RegionEast, PriceMultiplier: 0.95, DemandScore: 6, GrowthPotential: 6},
				},
			},
			{
				Name:             "Jeddah",
				ArabicName:       "جدة",
				AveragePrice:     750000,
				AverageRent:      3200,
				PricePerSqm:      3800,
				InflationRatePct: 5.0,
				Regions:          regions(),
				BaseSizes:        map[PropertyType]float64{Apartment: 130},
				Districts: []District{
					{Name: "Al Rawdah", ArabicName: "الروضة", Region: RegionNorth, PriceMultiplier: 1.2, DemandScore: 8, GrowthPotential: 6},
					{Name: "Al Zahra", ArabicName: "الزهراء", Region: RegionNorth, PriceMultiplier: 1.15, DemandScore: 8, GrowthPotential: 7},
					{Name: "Al Nuzhah", ArabicName: "النزهة", Region: RegionNorth, PriceMultiplier: 0.9, DemandScore: 6, GrowthPotential: 6},
					{Name: "Al Shati", ArabicName: "الشاطئ", Region: RegionWest, PriceMultiplier: 1.6, DemandScore: 9, GrowthPotential: 7},
					{Name: "Al Basateen", ArabicName: "البساتين", Region: RegionNorth, PriceMultiplier: 1.3, DemandScore: 7, GrowthPotential: 8},
					{Name: "Al Safa", ArabicName: "الصفا", Region: RegionEast, PriceMultiplier: 0.85, DemandScore: 6, GrowthPotential: 5},
				},
			},
			{
				Name:             "Makkah",
				ArabicName:       "مكة المكرمة",
				AveragePrice:     650000,
				AverageRent:      2800,
				PricePerSqm:      3500,
				InflationRatePct: 5.8,
				Regions:          regions(),
				Districts: []District{
					{Name: "Al Aziziyah", ArabicName: "العزيزية", Region: RegionCentral, PriceMultiplier: 1.3, DemandScore: 9, GrowthPotential: 6},
					{Name: "Al Shisha", ArabicName: "الششة", Region: RegionEast, PriceMultiplier: 0.8, DemandScore: 5, GrowthPotential: 5},
					{Name: "Al Naseem", ArabicName: "النسيم", Region: RegionEast, PriceMultiplier: 0.9, DemandScore: 6, GrowthPotential: 6},
					{Name: "Al Awali", ArabicName: "العوالي", Region: RegionSouth, PriceMultiplier: 1.1, DemandScore: 7, GrowthPotential: 8},
					{Name: "Al Kakiyah", ArabicName: "الكعكية", Region: RegionSouth, PriceMultiplier: 0.75, DemandScore: 5, GrowthPotential: 6},
					{Name: "Al Rusaifah", ArabicName: "الرصيفة", Region: RegionWest, PriceMultiplier: 1.0, DemandScore: 7, GrowthPotential: 6},
				},
			},
			{
				Name:             "Madinah",
				ArabicName:       "المدينة المنورة",
				AveragePrice:     600000,
				AverageRent:      2500,
				PricePerSqm:      3200,
				InflationRatePct: 4.5,
				Regions:          regions(),
				Districts: []District{
					{Name: "Quba", ArabicName: "قباء", Region: RegionSouth, PriceMultiplier: 1.2, DemandScore: 8, GrowthPotential: 7},
					{Name: "Al Awali", ArabicName: "العوالي", Region: RegionSouth, PriceMultiplier: 0.95, DemandScore: 6, GrowthPotential: 6},
					{Name: "Al Harrah Al Sharqiyah", ArabicName: "الحرة الشرقية", Region: RegionEast, PriceMultiplier: 0.8, DemandScore: 5, GrowthPotential: 6},
					{Name: "Al Nakheel", ArabicName: "النخيل", Region: RegionNorth, PriceMultiplier: 1.05, DemandScore: 7, GrowthPotential: 7},
					{Name: "Al Difa", ArabicName: "الدفاع", Region: RegionNorth, PriceMultiplier: 0.9, DemandScore: 6, GrowthPotential: 7},
					{Name: "Al Azhari", ArabicName: "الأزهري", Region: RegionWest, PriceMultiplier: 0.85, DemandScore: 5, GrowthPotential: 5},
				},
			},
			{
				Name:             "Dammam",
				ArabicName:       "الدمام",
				AveragePrice:     700000,
				AverageRent:      3000,
				PricePerSqm:      3600,
				InflationRatePct: 4.0,
				Regions:          regions(),
				Districts: []District{
					{Name: "Al Faisaliyah", ArabicName: "الفيصلية", Region: RegionCentral, PriceMultiplier: 1.0, DemandScore: 7, GrowthPotential: 6},
					{Name: "Al Shati", ArabicName: "الشاطئ", Region: RegionNorth, PriceMultiplier: 1.4, DemandScore: 8, GrowthPotential: 7},
					{Name: "Al Jalawiyah", ArabicName: "الجلوية", Region: RegionCentral, PriceMultiplier: 0.9, DemandScore: 6, GrowthPotential: 5},
					{Name: "Al Andalus", ArabicName: "الأندلس", Region: RegionEast, PriceMultiplier: 1.1, DemandScore: 7, GrowthPotential: 7},
					{Name: "Al Dabab", ArabicName: "الضباب", Region: RegionCentral, PriceMultiplier: 0.85, DemandScore: 5, GrowthPotential: 5},
					{Name: "Al Firdaws", ArabicName: "الفردوس", Region: RegionWest, PriceMultiplier: 0.95, DemandScore: 6, GrowthPotential: 8},
				},
			},
		},
		PriceSamples: []PriceSample{
			{City: "Riyadh", District: "Al Malqa", PropertyType: Villa, Price: 2450000},
			{City: "Riyadh", District: "Al Narjis", PropertyType: Apartment, Price: 890000},
			{City: "Jeddah", District: "Al Shati", PropertyType: Apartment, Price: 1150000},
		},
	}
}

func regions() []string {
	out := make([]string, len(allRegions))
	copy(out, allRegions)
	return out
}
