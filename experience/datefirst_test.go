package experience_test

import (
	"testing"

	"github.com/fwojciec/vitae"
	"github.com/fwojciec/vitae/experience"
	"github.com/stretchr/testify/assert"
)

func TestDateFirst(t *testing.T) {
	t.Parallel()

	extract := experience.DateFirst().Extract

	t.Run("reads an open-ended entry", func(t *testing.T) {
		t.Parallel()

		got := extract("2020 Present Engineer Acme Boston")

		assert.Equal(t, []vitae.JobEntry{{
			Title:     "Engineer",
			Company:   "Acme",
			Location:  "Boston",
			StartDate: "2020",
			EndDate:   "Present",
		}}, got)
	})

	t.Run("reads an explicit range", func(t *testing.T) {
		t.Parallel()

		got := extract("2018 2020 Analyst Initech Austin")

		assert.Equal(t, []vitae.JobEntry{{
			Title:     "Analyst",
			Company:   "Initech",
			Location:  "Austin",
			StartDate: "2018",
			EndDate:   "2020",
		}}, got)
	})

	t.Run("accepts the year placeholder", func(t *testing.T) {
		t.Parallel()

		got := extract("20XX Present Intern Globex Chicago")

		assert.Equal(t, []vitae.JobEntry{{
			Title:     "Intern",
			Company:   "Globex",
			Location:  "Chicago",
			StartDate: "20XX",
			EndDate:   "Present",
		}}, got)
	})

	t.Run("lists open-ended entries first", func(t *testing.T) {
		t.Parallel()

		got := extract("2018 2020 Analyst Initech Austin\n2020 Present Engineer Acme Boston")

		assert.Equal(t, []vitae.JobEntry{
			{Title: "Engineer", Company: "Acme", Location: "Boston", StartDate: "2020", EndDate: "Present"},
			{Title: "Analyst", Company: "Initech", Location: "Austin", StartDate: "2018", EndDate: "2020"},
		}, got)
	})

	t.Run("returns nothing without leading dates", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, extract("Engineer Acme Boston 2020 Present"))
	})
}
