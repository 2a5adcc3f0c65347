package players

import (
	"testing"

	"github.com/JerelRocktaschel/jumpshot/internal/testutil"
)

func TestPlayerJSONTags(t *testing.T) {
	testutil.AssertJSONTags(t, Player{},
		"ID", "id",
		"FirstName", "firstName",
		"LastName", "lastName",
		"HeightFeet", "heightFeet",
		"HeightInches", "heightInches",
		"WeightPounds", "weightPounds",
		"Draft", "draft,omitempty",
	)
}

// Stat lines keep the data host's abbreviations rather than spelled-out keys.
func TestStatLineUsesWireNames(t *testing.T) {
	testutil.AssertJSONTags(t, StatLine{},
		"TurnoversPerGame", "topg",
		"PersonalFouls", "pFouls",
		"DoubleDoubles", "dd2",
	)
}
