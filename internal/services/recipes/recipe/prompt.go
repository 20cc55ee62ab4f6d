package recipe

import "fmt"

// BuildPrompt renders the completion prompt for the given criteria. The
// wording and layout are load-bearing: the downstream model is steered by the
// repeated ingredient/instruction scaffolding, so edits here change output
// structure.
func BuildPrompt(c Criteria) string {
	regionTwo := c.EffectiveRegionTwo()
	return fmt.Sprintf(
		"Create a detailed recipe in the style of %s and %s, that uses %s for the protein, "+
			"includes %s, and a reasonable quantity of salt. Make sure to include %s incredients "+
			"and %s ingredients. Please write the ingredients and instructions in the format of a "+
			"recipe. Use detailed instructions. Please format the recipe list as follows:\n\n"+
			"Instructions: [instructions]\n\n"+
			"Ingredients:\n[ingredients]\n\n"+
			"Ingredients:\n"+
			"- Ingredient 1\n"+
			"- Ingredient 2\n"+
			"\nInstructions:\n"+
			"1. Step 1\n"+
			"2. Step 2\n"+
			"3. Step 3\n\n",
		c.RegionOne, regionTwo, c.Protein, c.SpecialIngredient, c.RegionOne, regionTwo,
	)
}
