package experience_test

import (
	"testing"

	"github.com/fwojciec/vitae"
	"github.com/fwojciec/vitae/experience"
	"github.com/stretchr/testify/assert"
)

func TestWholeText(t *testing.T) {
	t.Parallel()

	extract := experience.WholeText(experience.DefaultConfig()).Extract

	t.Run("reads comma entries with placeholder years", func(t *testing.T) {
		t.Parallel()

		got := extract("Software Engineer, Google January 20XX - March 20XX")

		assert.Equal(t, []vitae.JobEntry{{
			Title:     "Software Engineer",
			Company:   "Google",
			StartDate: "January 20XX",
			EndDate:   "March 20XX",
		}}, got)
	})

	t.Run("reads parenthesised entries and their undated form", func(t *testing.T) {
		t.Parallel()

		got := extract("Web Developer - Initech (June 2019 - Present)")

		assert.Equal(t, []vitae.JobEntry{
			{Title: "Web Developer", Company: "Initech", StartDate: "June 2019", EndDate: "Present"},
			{Title: "Web Developer", Company: "Initech"},
		}, got)
	})

	t.Run("requires a role keyword in the title", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, extract("Head Chef - Bistro"))
	})

	t.Run("returns nothing for summary prose", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, extract("SUMMARY\nPassionate about building scalable systems with 5 years of experience in backend development."))
	})
}
