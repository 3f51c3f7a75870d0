package keysystem

// CatalogEntry is one manufacturer/concept pair in the reference
// catalog presented when creating a key system.
type CatalogEntry struct {
	ID       uint
	Fabrikat string
	Koncept  string
}

// DefaultCatalog is the reference data reseeded on every migration
// run. The list mirrors the hardware families supported by the
// manufacturing partners.
func DefaultCatalog() []CatalogEntry {
	return []CatalogEntry{
		{Fabrikat: "Assa", Koncept: "D12"},
		{Fabrikat: "Assa", Koncept: "Max"},
		{Fabrikat: "Assa", Koncept: "Desmo"},
		{Fabrikat: "GEGE", Koncept: "Pextra"},
		{Fabrikat: "GEGE", Koncept: "Flex"},
		{Fabrikat: "GEGE", Koncept: "Pextra+"},
		{Fabrikat: "GEGE", Koncept: "Pextra+ Flex"},
		{Fabrikat: "GEGE", Koncept: "ANS"},
		{Fabrikat: "Evva", Koncept: "EPS"},
		{Fabrikat: "Evva", Koncept: "DPI"},
		{Fabrikat: "Evva", Koncept: "3KS"},
		{Fabrikat: "Evva", Koncept: "4KS"},
		{Fabrikat: "Evva", Koncept: "MCS"},
		{Fabrikat: "Abloy", Koncept: "Disklock Pro"},
		{Fabrikat: "Abloy", Koncept: "Novel"},
		{Fabrikat: "Abloy", Koncept: "Protec"},
		{Fabrikat: "Abloy", Koncept: "Protec 2"},
		{Fabrikat: "Abloy", Koncept: "Sentry"},
		{Fabrikat: "Ruko", Koncept: "Garant"},
		{Fabrikat: "Ruko", Koncept: "Garant Plus"},
		{Fabrikat: "Kaba", Koncept: "ExpetT"},
		{Fabrikat: "Kaba", Koncept: "ExpetT+"},
		{Fabrikat: "Kaba", Koncept: "Titan Combi"},
		{Fabrikat: "Yale", Koncept: "2100"},
		{Fabrikat: "Dorma", Koncept: "DMS SC"},
		{Fabrikat: "Medeco", Koncept: "DND"},
		{Fabrikat: "Trioving", Koncept: "D12"},
		{Fabrikat: "Mauer", Koncept: "Asgard"},
		{Fabrikat: "Abus", Koncept: "Plus"},
		{Fabrikat: "Abus", Koncept: "XPlus"},
		{Fabrikat: "Cisa", Koncept: "Astral"},
		{Fabrikat: "Mul-T-Lock", Koncept: "Classic"},
	}
}
