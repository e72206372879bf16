package plans

type SkinType string

const (
	SkinNormal      SkinType = "normal"
	SkinOily        SkinType = "oily"
	SkinDry         SkinType = "dry"
	SkinCombination SkinType = "combination"
	SkinSensitive   SkinType = "sensitive"
)

func (s SkinType) Valid() bool {
	_, ok := skinRoutines[s]
	return ok
}

type RoutineType string

const (
	RoutineAM RoutineType = "am"
	RoutinePM RoutineType = "pm"
)

func RoutineTypeFor(isAM bool) RoutineType {
	if isAM {
		return RoutineAM
	}
	return RoutinePM
}

type Step struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Optional    bool   `json:"optional"`
}

type routine struct {
	am []Step
	pm []Step
}

var skinRoutines = map[SkinType]routine{
	SkinNormal: {
		am: []Step{
			{Name: "Cleanser", Description: "Gentle cleanse to remove overnight buildup"},
			{Name: "Moisturizer", Description: "Lightweight moisturizer for hydration"},
			{Name: "SPF", Description: "Sunscreen SPF 30+ to protect from UV"},
		},
		pm: []Step{
			{Name: "Cleanser", Description: "Double cleanse to remove makeup/sunscreen"},
			{Name: "Treatment", Description: "Serum or active ingredients", Optional: true},
			{Name: "Moisturizer", Description: "Richer moisturizer for overnight repair"},
		},
	},
	SkinOily: {
		am: []Step{
			{Name: "Cleanser", Description: "Foaming cleanser to control oil"},
			{Name: "Toner", Description: "Astringent toner to minimize pores", Optional: true},
			{Name: "Moisturizer", Description: "Oil-free, gel-based moisturizer"},
			{Name: "SPF", Description: "Mattifying sunscreen SPF 30+"},
		},
		pm: []Step{
			{Name: "Cleanser", Description: "Deep cleansing to remove excess oil"},
			{Name: "Treatment", Description: "Salicylic acid or niacinamide serum"},
			{Name: "Moisturizer", Description: "Lightweight, non-comedogenic moisturizer"},
		},
	},
	SkinDry: {
		am: []Step{
			{Name: "Cleanser", Description: "Creamy, hydrating cleanser"},
			{Name: "Moisturizer", Description: "Rich, emollient moisturizer"},
			{Name: "SPF", Description: "Hydrating sunscreen SPF 30+"},
		},
		pm: []Step{
			{Name: "Cleanser", Description: "Gentle, non-stripping cleanser"},
			{Name: "Treatment", Description: "Hyaluronic acid or ceramide serum", Optional: true},
			{Name: "Moisturizer", Description: "Thick night cream or sleeping mask"},
		},
	},
	SkinCombination: {
		am: []Step{
			{Name: "Cleanser", Description: "Balancing cleanser"},
			{Name: "Toner", Description: "Gentle exfoliating toner", Optional: true},
			{Name: "Moisturizer", Description: "Lightweight moisturizer, focus on dry areas"},
			{Name: "SPF", Description: "Broad spectrum SPF 30+"},
		},
		pm: []Step{
			{Name: "Cleanser", Description: "Gentle cleanse"},
			{Name: "Treatment", Description: "Targeted treatment for T-zone", Optional: true},
			{Name: "Moisturizer", Description: "Balancing moisturizer"},
		},
	},
	SkinSensitive: {
		am: []Step{
			{Name: "Cleanser", Description: "Fragrance-free, gentle cleanser"},
			{Name: "Moisturizer", Description: "Soothing, barrier-repair moisturizer"},
			{Name: "SPF", Description: "Mineral sunscreen SPF 30+"},
		},
		pm: []Step{
			{Name: "Cleanser", Description: "Ultra-gentle cleanser"},
			{Name: "Moisturizer", Description: "Calming, fragrance-free night cream"},
		},
	},
}

// ResolveSkinSteps returns a copy of the ordered routine for the skin type.
// An unknown skin type gets the normal morning routine, whatever the time of day.
func ResolveSkinSteps(skinType SkinType, isAM bool) []Step {
	r, ok := skinRoutines[skinType]
	if !ok {
		return copySteps(skinRoutines[SkinNormal].am)
	}
	if isAM {
		return copySteps(r.am)
	}
	return copySteps(r.pm)
}

func copySteps(steps []Step) []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}
