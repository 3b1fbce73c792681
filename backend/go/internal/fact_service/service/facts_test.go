package service

import (
	"Trivio/backend/go/internal/models"
	"Trivio/backend/go/pkg/apperr"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFactDefaults(t *testing.T) {
	svc, _ := newTestService(t)

	fact, err := svc.CreateFact(userA, FactCreate{Content: "Octopuses have three hearts."})
	require.NoError(t, err)
	assert.NotZero(t, fact.ID)
	assert.Equal(t, models.DifficultyBasic, fact.Difficulty)
	assert.Equal(t, models.OriginAI, fact.Origin)
	assert.True(t, fact.IsActive)
	require.NotNil(t, fact.OwnerID)
	assert.Equal(t, userA, *fact.OwnerID)
	assert.Nil(t, fact.TopicID)
}

func TestCreateFactRequiresContent(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateFact(userA, FactCreate{Content: " \t "})
	requireCode(t, err, apperr.CodeValidation)
}

func TestCreateFactMissingTopic(t *testing.T) {
	svc, st := newTestService(t)

	_, err := svc.CreateFact(userA, FactCreate{
		Content: "Bananas are berries.",
		TopicID: uintPtr(999),
	})
	requireCode(t, err, apperr.CodeNotFound)

	// 校验失败时不写入任何行
	var count int64
	require.NoError(t, st.DB.Model(&models.Fact{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateFactInvalidEnums(t *testing.T) {
	svc, _ := newTestService(t)

	bad := models.Difficulty("impossible")
	_, err := svc.CreateFact(userA, FactCreate{Content: "x", Difficulty: &bad})
	requireCode(t, err, apperr.CodeValidation)

	badOrigin := models.FactOrigin("scraped")
	_, err = svc.CreateFact(userA, FactCreate{Content: "x", Origin: &badOrigin})
	requireCode(t, err, apperr.CodeValidation)
}

func TestUpdateFactByNonOwner(t *testing.T) {
	svc, _ := newTestService(t)

	fact, err := svc.CreateFact(userA, FactCreate{Content: "Honey never spoils."})
	require.NoError(t, err)

	_, err = svc.UpdateFact(userB, fact.ID, FactUpdate{Content: strPtr("edited")})
	requireCode(t, err, apperr.CodeNotFound)

	got, err := svc.UpdateFact(userA, fact.ID, FactUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "Honey never spoils.", got.Content)
}

func TestUpdateFactValidatesTopic(t *testing.T) {
	svc, _ := newTestService(t)

	fact, err := svc.CreateFact(userA, FactCreate{Content: "Honey never spoils."})
	require.NoError(t, err)

	// 更新里引用不存在的主题时，任何字段都不应被应用
	_, err = svc.UpdateFact(userA, fact.ID, FactUpdate{
		Content: strPtr("edited"),
		TopicID: uintPtr(999),
	})
	requireCode(t, err, apperr.CodeNotFound)

	got, err := svc.UpdateFact(userA, fact.ID, FactUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "Honey never spoils.", got.Content)
}

func TestUpdateFactPartial(t *testing.T) {
	svc, _ := newTestService(t)

	topic, err := svc.CreateTopic(userA, TopicCreate{Name: "Biology"})
	require.NoError(t, err)
	fact, err := svc.CreateFact(userA, FactCreate{
		Content: "Honey never spoils.",
		TopicID: &topic.ID,
		Source:  strPtr("encyclopedia"),
	})
	require.NoError(t, err)

	adv := models.DifficultyAdvanced
	updated, err := svc.UpdateFact(userA, fact.ID, FactUpdate{Difficulty: &adv})
	require.NoError(t, err)
	assert.Equal(t, models.DifficultyAdvanced, updated.Difficulty)
	assert.Equal(t, "Honey never spoils.", updated.Content)
	require.NotNil(t, updated.Source)
	assert.Equal(t, "encyclopedia", *updated.Source)
}

func TestListFactsFilters(t *testing.T) {
	svc, _ := newTestService(t)

	topic, err := svc.CreateTopic(userA, TopicCreate{Name: "Space"})
	require.NoError(t, err)
	_, err = svc.CreateFact(userA, FactCreate{Content: "in topic", TopicID: &topic.ID})
	require.NoError(t, err)
	_, err = svc.CreateFact(userA, FactCreate{Content: "no topic"})
	require.NoError(t, err)
	_, err = svc.CreateFact(userA, FactCreate{Content: "retired", IsActive: boolPtr(false)})
	require.NoError(t, err)
	_, err = svc.CreateFact(userB, FactCreate{Content: "someone else's"})
	require.NoError(t, err)

	facts, err := svc.ListFacts(userA, nil, false)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"in topic", "no topic"}, factContents(facts))

	facts, err = svc.ListFacts(userA, &topic.ID, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"in topic"}, factContents(facts))

	facts, err = svc.ListFacts(userA, nil, true)
	require.NoError(t, err)
	assert.Contains(t, factContents(facts), "retired")
}

func factContents(facts []*models.Fact) []string {
	contents := make([]string, 0, len(facts))
	for _, fact := range facts {
		contents = append(contents, fact.Content)
	}
	return contents
}
