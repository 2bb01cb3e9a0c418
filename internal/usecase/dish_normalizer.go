package usecase

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/dishlens/backend/internal/domain"
)

// notAvailable is shown for dataset fields that are missing
const notAvailable = "N/A"

// firstNumberRegex finds the first number in free text such as "150 calories"
var firstNumberRegex = regexp.MustCompile(`\d+\.?\d*`)

// ExtractCalories coerces a raw calories value to kcal. Numbers pass through,
// strings yield their first embedded number, anything else yields 0.
func ExtractCalories(v domain.RawValue) float64 {
	switch v.Kind() {
	case domain.KindNumber:
		return v.Number()
	case domain.KindString:
		match := firstNumberRegex.FindString(v.Str())
		if match == "" {
			return 0
		}
		calories, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return 0
		}
		return calories
	case domain.KindAbsent, domain.KindList, domain.KindObject, domain.KindOther:
		return 0
	default:
		return 0
	}
}

// ExtractMacroValue coerces a raw macro amount ("25g", "25", 25, "N/A") to grams.
// The returned presence tells an absent or "N/A" value apart from one that was
// present but could not be parsed.
func ExtractMacroValue(v domain.RawValue) domain.MacroValue {
	switch v.Kind() {
	case domain.KindAbsent:
		return domain.MacroValue{Presence: domain.PresenceAbsent}
	case domain.KindNumber:
		return domain.MacroValue{Grams: v.Number(), Presence: domain.PresenceValid, Numeric: true}
	case domain.KindString, domain.KindList, domain.KindObject, domain.KindOther:
		return parseMacroText(v.String())
	default:
		return domain.MacroValue{Presence: domain.PresenceInvalid}
	}
}

func parseMacroText(raw string) domain.MacroValue {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" || text == "n/a" {
		return domain.MacroValue{Presence: domain.PresenceAbsent}
	}

	if strings.HasSuffix(text, "g") {
		text = strings.TrimSpace(strings.TrimSuffix(text, "g"))
	}

	grams, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return domain.MacroValue{Presence: domain.PresenceInvalid}
	}
	return domain.MacroValue{Grams: grams, Presence: domain.PresenceValid}
}

// ResolveInstructions returns the first non-null instructions field of the record
// together with its name. ok is false when the record has no instructions.
func ResolveInstructions(r domain.DishRecord) (raw domain.RawValue, field string, ok bool) {
	for _, name := range domain.InstructionFields {
		if v := r.Get(name); !v.IsAbsent() {
			return v, name, true
		}
	}
	return domain.AbsentValue(), "", false
}

// ExtractIngredients returns the record's ingredient list as trimmed strings.
// ok is false when the field is missing or not a list.
func ExtractIngredients(r domain.DishRecord) (ingredients []string, ok bool) {
	v := r.Get(domain.FieldIngredients)
	if v.Kind() != domain.KindList {
		return []string{}, false
	}
	return coerceStrings(v.Items()), true
}

// DefaultShopURL is the grocery search page ingredient links point at
const DefaultShopURL = "https://www.amazon.com/s?i=amazonfresh"

// IngredientShopLinks builds one grocery search link per ingredient by setting
// the k query parameter of shopURL. An empty or unparsable shopURL yields no links.
func IngredientShopLinks(ingredients []string, shopURL string) []domain.IngredientLink {
	links := make([]domain.IngredientLink, 0, len(ingredients))
	if shopURL == "" {
		return links
	}
	base, err := url.Parse(shopURL)
	if err != nil {
		return links
	}

	for _, name := range ingredients {
		u := *base
		q := u.Query()
		q.Set("k", name)
		u.RawQuery = q.Encode()
		links = append(links, domain.IngredientLink{Name: name, ShopURL: u.String()})
	}
	return links
}

// NormalizeDish derives the display view of a dish record. It never fails:
// unusable fields degrade to zero values, "N/A" text or empty lists.
func NormalizeDish(r domain.DishRecord) domain.NormalizedDish {
	calories := r.Get(domain.FieldCalories)

	dish := domain.NormalizedDish{
		Name:            r.Name,
		Calories:        ExtractCalories(calories),
		CaloriesDisplay: displayText(calories),
		Cost:            displayText(r.Get(domain.FieldCost)),
		HealthyFlag:     displayText(r.Get(domain.FieldHealthyFlag)),
		Protein:         domain.MacroValue{Presence: domain.PresenceAbsent},
		Carbs:           domain.MacroValue{Presence: domain.PresenceAbsent},
		Fat:             domain.MacroValue{Presence: domain.PresenceAbsent},
		Instructions:    []string{},
	}

	if macros := r.Get(domain.FieldMacros); macros.Kind() == domain.KindObject {
		dish.HasMacros = true
		dish.Protein = ExtractMacroValue(macros.Field(domain.MacroProtein))
		dish.Carbs = ExtractMacroValue(macros.Field(domain.MacroCarbs))
		dish.Fat = ExtractMacroValue(macros.Field(domain.MacroFat))
	}

	dish.Ingredients, dish.IngredientsAvailable = ExtractIngredients(r)

	raw, field, ok := ResolveInstructions(r)
	if !ok {
		dish.InstructionStatus = domain.InstructionsMissing
		return dish
	}

	dish.InstructionField = field
	steps, recognized := SplitInstructions(raw)
	if !recognized {
		dish.InstructionWarning = fmt.Sprintf("Cooking instructions format is unexpected: %s", raw.Kind())
	}
	if len(steps) > 0 {
		dish.Instructions = steps
		dish.InstructionStatus = domain.InstructionsAvailable
	} else {
		dish.InstructionStatus = domain.InstructionsUnparsable
	}

	return dish
}

// DeduplicateDishes keeps the first record for every dish name, in source order
func DeduplicateDishes(records []domain.DishRecord) []domain.DishRecord {
	seen := make(map[string]bool, len(records))
	unique := make([]domain.DishRecord, 0, len(records))
	for _, r := range records {
		if seen[r.Name] {
			continue
		}
		seen[r.Name] = true
		unique = append(unique, r)
	}
	return unique
}

func displayText(v domain.RawValue) string {
	if v.IsAbsent() {
		return notAvailable
	}
	return v.String()
}

func coerceStrings(items []domain.RawValue) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}
