package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/riquelima/SandyPetShop-v3/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placeholder = regexp.MustCompile(`\$(\d+)(::\w+)?`)

func TestListQuery_DateFilterTypesEachPlaceholderOnce(t *testing.T) {
	day := time.Date(2025, 10, 25, 15, 30, 0, 0, time.UTC)

	query, args := listQuery(domain.ReservationFilter{
		ServiceType: domain.ServiceHotel,
		Date:        &day,
		Limit:       50,
	})

	seen := map[string]int{}
	for _, m := range placeholder.FindAllStringSubmatch(query, -1) {
		seen[m[1]]++
	}
	for n, count := range seen {
		assert.Equal(t, 1, count, "placeholder $%s used more than once", n)
	}
	assert.NotContains(t, query, "::timestamptz")

	require.Len(t, args, 5)
	assert.Equal(t, "hotel", args[0])
	assert.Equal(t, "2025-10-25", args[1])
	assert.Equal(t, time.Date(2025, 10, 26, 0, 0, 0, 0, time.UTC), args[2])
	assert.Equal(t, time.Date(2025, 10, 25, 0, 0, 0, 0, time.UTC), args[3])
	assert.Equal(t, 50, args[4])
	assert.Contains(t, query, "(slot_date = $2::date OR (check_in < $3 AND check_out > $4))")
	assert.Contains(t, query, "LIMIT $5")
}

func TestListQuery_NoFilter(t *testing.T) {
	query, args := listQuery(domain.ReservationFilter{})

	assert.NotContains(t, query, "WHERE")
	assert.NotContains(t, query, "LIMIT")
	assert.Empty(t, args)
}
