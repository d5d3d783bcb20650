package helpers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/domain/models"
)

type amountDoc struct {
	Amount decimal.Decimal `bson:"amount"`
}

func TestDecimalCodec(t *testing.T) {
	reg := NewRegistry()

	data, err := bson.MarshalWithRegistry(reg, amountDoc{Amount: decimal.RequireFromString("-500.25")})
	require.NoError(t, err)

	raw := bson.Raw(data)
	value := raw.Lookup("amount")
	_, ok := value.Decimal128OK()
	assert.True(t, ok, "amount must be stored as Decimal128")

	var decoded amountDoc
	require.NoError(t, bson.UnmarshalWithRegistry(reg, data, &decoded))
	assert.Equal(t, "-500.25", decoded.Amount.String())
}

func TestDecimalCodecAcceptsNumbers(t *testing.T) {
	reg := NewRegistry()

	for name, value := range map[string]any{
		"int32":  int32(0),
		"int64":  int64(12),
		"double": 1.5,
		"string": "7.25",
	} {
		data, err := bson.Marshal(bson.M{"amount": value})
		require.NoError(t, err)

		var decoded amountDoc
		require.NoError(t, bson.UnmarshalWithRegistry(reg, data, &decoded), name)
		assert.True(t, decimal.RequireFromString(map[string]string{
			"int32": "0", "int64": "12", "double": "1.5", "string": "7.25",
		}[name]).Equal(decoded.Amount), name)
	}
}

func TestDecimalCodecRejectsOtherTypes(t *testing.T) {
	data, err := bson.Marshal(bson.M{"amount": primitive.NewObjectID()})
	require.NoError(t, err)

	var decoded amountDoc
	assert.Error(t, bson.UnmarshalWithRegistry(NewRegistry(), data, &decoded))
}

func TestBuildSortAddsIdTiebreaker(t *testing.T) {
	sort, err := BuildSort([]models.SortOrder{
		{Field: "name", Direction: models.SortDescending},
		{Field: "code", Direction: models.SortAscending},
	}, models.AssetSortFields)
	require.NoError(t, err)

	assert.Equal(t, bson.D{
		{Key: "name", Value: -1},
		{Key: "code", Value: 1},
		{Key: "_id", Value: 1},
	}, sort)
}

func TestBuildSortKeepsExplicitId(t *testing.T) {
	sort, err := BuildSort([]models.SortOrder{
		{Field: "id", Direction: models.SortDescending},
		{Field: "id", Direction: models.SortAscending},
	}, models.AssetSortFields)
	require.NoError(t, err)

	assert.Equal(t, bson.D{{Key: "_id", Value: -1}}, sort)
}

func TestBuildSortRejectsUnknownField(t *testing.T) {
	_, err := BuildSort([]models.SortOrder{{Field: "password", Direction: models.SortAscending}}, models.UserSortFields)
	assert.ErrorIs(t, err, ErrInvalidSortField)
}

func TestLookupOne(t *testing.T) {
	stages := LookupOne(models.PartnerCollection, "provider_id", "provider")
	require.Len(t, stages, 2)
	assert.Equal(t, "$lookup", stages[0][0].Key)
	assert.Equal(t, "$unwind", stages[1][0].Key)
	assert.Equal(t, "$provider", stages[1][0].Value.(bson.M)["path"])
}
