package experience_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/vitae"
	"github.com/fwojciec/vitae/experience"
	"github.com/stretchr/testify/assert"
)

func TestLineByLine(t *testing.T) {
	t.Parallel()

	extract := experience.LineByLine(experience.DefaultConfig()).Extract

	t.Run("separates company from the date in comma lines", func(t *testing.T) {
		t.Parallel()

		got := extract("Data Analyst, Acme Corp January 2021 - March 2022")

		assert.Equal(t, []vitae.JobEntry{{
			Title:     "Data Analyst",
			Company:   "Acme Corp",
			StartDate: "January 2021",
			EndDate:   "March 2022",
		}}, got)
	})

	t.Run("keeps month words that open the company name", func(t *testing.T) {
		t.Parallel()

		got := extract(strings.Join([]string{
			"Software Engineer, March Networks January 2021 - March 2022",
			"Software Engineer, May Mobility June 2020 - Present",
			"Data Analyst, March Networks 2018 - 2020",
		}, "\n"))

		assert.Equal(t, []vitae.JobEntry{
			{Title: "Software Engineer", Company: "March Networks", StartDate: "January 2021", EndDate: "March 2022"},
			{Title: "Software Engineer", Company: "May Mobility", StartDate: "June 2020", EndDate: "Present"},
			{Title: "Data Analyst", Company: "March Networks", StartDate: "2018", EndDate: "2020"},
		}, got)
	})

	t.Run("moves a trailing day into the start date", func(t *testing.T) {
		t.Parallel()

		got := extract("Data Analyst, Acme Corp Jan 15 2021 - March 2022")

		assert.Equal(t, []vitae.JobEntry{{
			Title:     "Data Analyst",
			Company:   "Acme Corp",
			StartDate: "Jan 15 2021",
			EndDate:   "March 2022",
		}}, got)
	})

	t.Run("reads parenthesised ranges", func(t *testing.T) {
		t.Parallel()

		got := extract("Software Developer - Globex (June 2019 - Present)")

		assert.Equal(t, []vitae.JobEntry{{
			Title:     "Software Developer",
			Company:   "Globex",
			StartDate: "June 2019",
			EndDate:   "Present",
		}}, got)
	})

	t.Run("reads undated roles", func(t *testing.T) {
		t.Parallel()

		got := extract("Marketing Intern - Initech")

		assert.Equal(t, []vitae.JobEntry{{Title: "Marketing Intern", Company: "Initech"}}, got)
	})

	t.Run("requires a role keyword for undated lines", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, extract("Volunteer - Red Cross"))
	})

	t.Run("trims cleaning artifacts from titles", func(t *testing.T) {
		t.Parallel()

		got := extract(strings.Join([]string{
			"e Data Analyst, Acme Corp January 2021 - March 2022",
			"ce: Support Engineer - Globex (May 2018 - June 2019)",
			"e: QA Engineer - Initech",
		}, "\n"))

		assert.Equal(t, []vitae.JobEntry{
			{Title: "Data Analyst", Company: "Acme Corp", StartDate: "January 2021", EndDate: "March 2022"},
			{Title: "Support Engineer", Company: "Globex", StartDate: "May 2018", EndDate: "June 2019"},
			{Title: "QA Engineer", Company: "Initech"},
		}, got)
	})

	t.Run("skips description lines", func(t *testing.T) {
		t.Parallel()

		got := extract(strings.Join([]string{
			"• Support Engineer - Acme",
			"- Support Engineer - Acme",
			"Built the Engineer - Portal",
			"Passionate Engineer - Acme",
			"Owned responsibilities as Engineer - Acme",
			strings.Repeat("a", 90) + " Engineer - Acme",
		}, "\n"))

		assert.Empty(t, got)
	})

	t.Run("falls through to the next shape when a guard rejects", func(t *testing.T) {
		t.Parallel()

		got := extract("QA, Engineer - Acme (2019 - 2020)")

		assert.Equal(t, []vitae.JobEntry{{
			Title:     "QA, Engineer",
			Company:   "Acme",
			StartDate: "2019",
			EndDate:   "2020",
		}}, got)
	})

	t.Run("returns nothing for empty text", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, extract(""))
	})
}
