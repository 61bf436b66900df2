package normalize

import "strings"

// StandardCategory is the normalized category vocabulary served to the
// newsstand frontend.
type StandardCategory string

const (
	CategoryMain          StandardCategory = "main"
	CategorySports        StandardCategory = "sports"
	CategoryPolitics      StandardCategory = "politics"
	CategoryEconomy       StandardCategory = "economy"
	CategoryCulture       StandardCategory = "culture"
	CategoryTechnology    StandardCategory = "technology"
	CategoryInternational StandardCategory = "international"
	CategorySociety       StandardCategory = "society"
	CategoryOpinion       StandardCategory = "opinion"
)

// Raw feed categories, lowercase, mapped to the standard vocabulary.
// French and English variants share the table since most ingested outlets
// publish in one or the other.
var categoryMappings = map[string]StandardCategory{
	"sport": CategorySports, "sports": CategorySports,
	"football": CategorySports, "soccer": CategorySports,
	"basket": CategorySports, "basketball": CategorySports,
	"rugby": CategorySports, "tennis": CategorySports,
	"cyclisme": CategorySports, "cycling": CategorySports,
	"formule 1": CategorySports, "f1": CategorySports,
	"ligue 1": CategorySports, "champions league": CategorySports,
	"ligue des champions": CategorySports, "premier league": CategorySports,
	"coupe du monde": CategorySports, "world cup": CategorySports,

	"politique": CategoryPolitics, "politics": CategoryPolitics,
	"gouvernement": CategoryPolitics, "government": CategoryPolitics,
	"elections": CategoryPolitics, "élections": CategoryPolitics,
	"election": CategoryPolitics, "parlement": CategoryPolitics,
	"parliament": CategoryPolitics, "senat": CategoryPolitics,
	"senate": CategoryPolitics,

	"economie": CategoryEconomy, "économie": CategoryEconomy,
	"economy": CategoryEconomy, "economic": CategoryEconomy,
	"finance": CategoryEconomy, "business": CategoryEconomy,
	"bourse": CategoryEconomy, "stock market": CategoryEconomy,
	"entreprise": CategoryEconomy, "industrie": CategoryEconomy,
	"industry": CategoryEconomy, "emploi": CategoryEconomy,
	"employment": CategoryEconomy, "travail": CategoryEconomy,

	"culture": CategoryCulture, "art": CategoryCulture, "arts": CategoryCulture,
	"cinema": CategoryCulture, "cinéma": CategoryCulture,
	"film": CategoryCulture, "movie": CategoryCulture,
	"musique": CategoryCulture, "music": CategoryCulture,
	"theatre": CategoryCulture, "théâtre": CategoryCulture,
	"livre": CategoryCulture, "books": CategoryCulture,
	"litterature": CategoryCulture, "littérature": CategoryCulture,
	"literature": CategoryCulture, "spectacle": CategoryCulture,
	"entertainment": CategoryCulture, "divertissement": CategoryCulture,

	"technologie": CategoryTechnology, "technology": CategoryTechnology,
	"tech": CategoryTechnology, "high-tech": CategoryTechnology,
	"informatique": CategoryTechnology, "internet": CategoryTechnology,
	"web": CategoryTechnology, "digital": CategoryTechnology,
	"numérique": CategoryTechnology, "innovation": CategoryTechnology,
	"startup": CategoryTechnology, "startups": CategoryTechnology,
	"intelligence artificielle": CategoryTechnology, "ai": CategoryTechnology,
	"artificial intelligence": CategoryTechnology,
	"cybersecurite":           CategoryTechnology, "cybersecurity": CategoryTechnology,

	"international": CategoryInternational, "monde": CategoryInternational,
	"world": CategoryInternational, "global": CategoryInternational,
	"etranger": CategoryInternational, "étranger": CategoryInternational,
	"foreign": CategoryInternational, "europe": CategoryInternational,
	"asie": CategoryInternational, "asia": CategoryInternational,
	"amerique": CategoryInternational, "amérique": CategoryInternational,
	"america": CategoryInternational, "afrique": CategoryInternational,
	"africa": CategoryInternational, "moyen-orient": CategoryInternational,
	"middle east": CategoryInternational,

	"societe": CategorySociety, "société": CategorySociety,
	"society": CategorySociety, "social": CategorySociety,
	"education": CategorySociety, "éducation": CategorySociety,
	"sante": CategorySociety, "santé": CategorySociety,
	"health": CategorySociety, "environnement": CategorySociety,
	"environment": CategorySociety, "ecologie": CategorySociety,
	"écologie": CategorySociety, "justice": CategorySociety,
	"droit": CategorySociety, "law": CategorySociety,
	"police": CategorySociety, "securite": CategorySociety,
	"sécurité": CategorySociety, "security": CategorySociety,
	"immigration": CategorySociety, "famille": CategorySociety,
	"family": CategorySociety,

	"opinion": CategoryOpinion, "editorial": CategoryOpinion,
	"éditorial": CategoryOpinion, "chronique": CategoryOpinion,
	"column": CategoryOpinion, "tribune": CategoryOpinion,
	"debat": CategoryOpinion, "débat": CategoryOpinion,
	"debate": CategoryOpinion, "analyse": CategoryOpinion,
	"analysis": CategoryOpinion, "commentaire": CategoryOpinion,

	"une": CategoryMain, "a la une": CategoryMain, "à la une": CategoryMain,
	"top stories": CategoryMain, "headlines": CategoryMain,
	"breaking": CategoryMain, "breaking news": CategoryMain,
	"actualite": CategoryMain, "actualité": CategoryMain,
	"news": CategoryMain, "actu": CategoryMain,
}

var standardCategories = map[StandardCategory]bool{
	CategoryMain: true, CategorySports: true, CategoryPolitics: true,
	CategoryEconomy: true, CategoryCulture: true, CategoryTechnology: true,
	CategoryInternational: true, CategorySociety: true, CategoryOpinion: true,
}

// MapCategory maps a raw item category and a configured feed category to
// the standard vocabulary. The feed's configured category wins over the
// raw item category; unknown values fall back to "main".
func MapCategory(rawCategory, feedCategory string) StandardCategory {
	for _, candidate := range []string{feedCategory, rawCategory} {
		if candidate == "" {
			continue
		}
		normalized := strings.ToLower(strings.TrimSpace(candidate))
		if mapped, ok := categoryMappings[normalized]; ok {
			return mapped
		}
		if standardCategories[StandardCategory(normalized)] {
			return StandardCategory(normalized)
		}
	}
	return CategoryMain
}

// StandardCategories lists the normalized vocabulary in display order.
func StandardCategories() []StandardCategory {
	return []StandardCategory{
		CategoryMain, CategorySports, CategoryPolitics, CategoryEconomy,
		CategoryCulture, CategoryTechnology, CategoryInternational,
		CategorySociety, CategoryOpinion,
	}
}
