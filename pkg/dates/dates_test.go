package dates_test

import (
	"testing"

	"go-portfolio-site/pkg/dates"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Aug 2023", dates.FormatDate("2023-08-01"))
	assert.Equal(t, "Aug 2023", dates.FormatDate("2023-08"))
	assert.Equal(t, "2023", dates.FormatDate("2023"))
	assert.Equal(t, "", dates.FormatDate("  "))
	// Unparseable input falls through unchanged
	assert.Equal(t, "sometime", dates.FormatDate("sometime"))
}

func TestFormatDateRange(t *testing.T) {
	assert.Equal(t, "Sep 2019 - May 2023", dates.FormatDateRange("2019-09", "2023-05"))
	assert.Equal(t, "Aug 2023 - Present", dates.FormatDateRange("2023-08", ""))
	assert.Equal(t, "Aug 2023 - Present", dates.FormatDateRange("2023-08-14", "   "))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "distributed-task-queue", dates.Slugify("Distributed Task Queue"))
	assert.Equal(t, "ml-pipeline-v2", dates.Slugify("  ML Pipeline (v2)! "))
	assert.Equal(t, "a-b", dates.Slugify("a___b"))
	assert.Equal(t, "", dates.Slugify("!!!"))
}
