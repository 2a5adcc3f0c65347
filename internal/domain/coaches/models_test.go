package coaches

import (
	"testing"

	"github.com/JerelRocktaschel/jumpshot/internal/testutil"
)

func TestCoachJSONTags(t *testing.T) {
	testutil.AssertJSONTags(t, Coach{},
		"PersonID", "personId",
		"TeamID", "teamId",
		"IsAssistant", "isAssistant",
		"SortSequence", "sortSequence",
	)
}
