package services

import (
	"testing"

	"frontdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roomTypeFixtures() []models.RoomType {
	return []models.RoomType{
		{ID: "t1", Name: "Deluxe"},
		{ID: "t2", Name: "Standard"},
		{ID: "t3", Name: "Suite"},
		{ID: "t4", Name: "Phòng Gia Đình"},
	}
}

func TestSuggestRoomTypesTypo(t *testing.T) {
	suggestions := SuggestRoomTypes("delux", roomTypeFixtures(), 3)
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "Deluxe", suggestions[0].Name)
}

func TestSuggestRoomTypesIgnoresDiacritics(t *testing.T) {
	suggestions := SuggestRoomTypes("phong gia dinh", roomTypeFixtures(), 3)
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "Phòng Gia Đình", suggestions[0].Name)
}

func TestSuggestRoomTypesEmptyQuery(t *testing.T) {
	assert.Nil(t, SuggestRoomTypes("   ", roomTypeFixtures(), 3))
	assert.Nil(t, SuggestRoomTypes("deluxe", nil, 3))
}

func TestSuggestRoomTypesLimit(t *testing.T) {
	suggestions := SuggestRoomTypes("s", roomTypeFixtures(), 1)
	assert.LessOrEqual(t, len(suggestions), 1)
}

func TestSuggestRoomTypesSortedByScore(t *testing.T) {
	suggestions := SuggestRoomTypes("suite", roomTypeFixtures(), 0)
	for i := 1; i < len(suggestions); i++ {
		assert.GreaterOrEqual(t, suggestions[i-1].Score, suggestions[i].Score)
	}
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "Suite", suggestions[0].Name)
}
