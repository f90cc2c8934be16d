package sales

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterStateMatches(t *testing.T) {
	tx := Transaction{
		CustomerRegion:  "North",
		Gender:          "Female",
		ProductCategory: "Beauty",
		PaymentMethod:   "UPI",
		Age:             30,
		Date:            NewDate(2025, time.November, 15),
		Tags:            []string{"VIP"},
	}

	t.Run("zero filter matches everything", func(t *testing.T) {
		assert.True(t, FilterState{}.Matches(tx))
		assert.True(t, FilterState{}.IsZero())
	})

	t.Run("set dimensions are membership tests", func(t *testing.T) {
		assert.True(t, FilterState{Regions: []string{"South", "North"}}.Matches(tx))
		assert.False(t, FilterState{Regions: []string{"South", "East"}}.Matches(tx))
		assert.False(t, FilterState{Genders: []string{"Male"}}.Matches(tx))
		assert.False(t, FilterState{Categories: []string{"Sports"}}.Matches(tx))
		assert.False(t, FilterState{PaymentMethods: []string{"Cash"}}.Matches(tx))
	})

	t.Run("tag selection matches any shared label", func(t *testing.T) {
		assert.True(t, FilterState{Tags: []string{"VIP", "New"}}.Matches(tx))
		assert.False(t, FilterState{Tags: []string{"New"}}.Matches(tx))

		untagged := tx
		untagged.Tags = nil
		assert.False(t, FilterState{Tags: []string{"VIP"}}.Matches(untagged))
		assert.True(t, FilterState{}.Matches(untagged))
	})

	t.Run("age bounds are inclusive", func(t *testing.T) {
		assert.True(t, FilterState{AgeRange: &AgeRange{Min: 30, Max: 30}}.Matches(tx))
		assert.False(t, FilterState{AgeRange: &AgeRange{Min: 31, Max: 40}}.Matches(tx))
		assert.False(t, FilterState{AgeRange: &AgeRange{Min: 18, Max: 29}}.Matches(tx))
	})

	t.Run("date bounds are inclusive", func(t *testing.T) {
		exact := &DateRange{From: NewDate(2025, time.November, 15), To: NewDate(2025, time.November, 15)}
		assert.True(t, FilterState{DateRange: exact}.Matches(tx))

		before := &DateRange{From: NewDate(2025, time.October, 1), To: NewDate(2025, time.November, 14)}
		assert.False(t, FilterState{DateRange: before}.Matches(tx))
	})

	t.Run("dimensions combine as a conjunction", func(t *testing.T) {
		f := FilterState{
			Regions:  []string{"North"},
			Genders:  []string{"Female"},
			AgeRange: &AgeRange{Min: 18, Max: 40},
		}
		assert.True(t, f.Matches(tx))

		f.Genders = []string{"Male"}
		assert.False(t, f.Matches(tx))
	})
}

func TestParseAgeBucket(t *testing.T) {
	t.Run("parses closed buckets", func(t *testing.T) {
		r, err := ParseAgeBucket("18-25")
		require.NoError(t, err)
		assert.Equal(t, AgeRange{Min: 18, Max: 25}, r)

		r, err = ParseAgeBucket(" 26-35 ")
		require.NoError(t, err)
		assert.Equal(t, AgeRange{Min: 26, Max: 35}, r)
	})

	t.Run("parses open-ended buckets", func(t *testing.T) {
		r, err := ParseAgeBucket("56+")
		require.NoError(t, err)
		assert.Equal(t, AgeRange{Min: 56, Max: 100}, r)
	})

	t.Run("rejects malformed labels", func(t *testing.T) {
		for _, label := range []string{"", "adult", "18", "x-25", "18-y", "+", "40-18"} {
			_, err := ParseAgeBucket(label)
			assert.Error(t, err, "label %q", label)
		}
	})
}
