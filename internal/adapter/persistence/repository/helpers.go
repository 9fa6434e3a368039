package repository

import (
	"context"
	"errors"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "contadores"

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// nextID increments and returns the sequence for the given table name using
// an atomic counter item (PK: nome). The ADD update is create-or-increment,
// so counters never need seeding.
func nextID(ctx context.Context, ddb *dynamodb.Client, sequence string) (int64, error) {
	table := getenvDefault("COUNTERS_TABLE", defaultCountersTableName)
	out, err := ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"nome": &types.AttributeValueMemberS{Value: sequence},
		},
		UpdateExpression: aws.String("ADD #valor :um"),
		ExpressionAttributeNames: map[string]string{
			"#valor": "valor",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":um": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	n, ok := out.Attributes["valor"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errCounterCorrupted
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

var errCounterCorrupted = errors.New("counter attribute is not numeric")

func idKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}
