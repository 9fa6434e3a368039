package repository

import (
	"context"
	"time"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	"github.com/Luke2905/sistema-avivar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/shopspring/decimal"
)

const defaultDespesasTableName = "despesas"

type despesaItem struct {
	ID             int64  `dynamodbav:"id"`
	Descricao      string `dynamodbav:"descricao"`
	Valor          string `dynamodbav:"valor"`
	Categoria      string `dynamodbav:"categoria,omitempty"`
	DataVencimento string `dynamodbav:"data_vencimento"`
	Pago           bool   `dynamodbav:"pago"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// DespesaDynamoRepository persists Despesa records in DynamoDB.
//
// Table requirements:
//   - PK: id (number, issued by the contadores sequence)

type DespesaDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDespesaRepository = (*DespesaDynamoRepository)(nil)

func NewDespesaDynamoRepository(ddb *dynamodb.Client) *DespesaDynamoRepository {
	return &DespesaDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DESPESAS_TABLE", defaultDespesasTableName),
	}
}

func (r *DespesaDynamoRepository) Create(ctx context.Context, d entities.Despesa) (entities.Despesa, error) {
	id, err := nextID(ctx, r.ddb, "despesas")
	if err != nil {
		return entities.Despesa{}, err
	}
	d.ID = id
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toDespesaItem(d))
	if err != nil {
		return entities.Despesa{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Despesa{}, err
	}
	return d, nil
}

func (r *DespesaDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Despesa, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Despesa{}, err
	}
	if len(out.Item) == 0 {
		return entities.Despesa{}, nil
	}

	var it despesaItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Despesa{}, err
	}
	return fromDespesaItem(it), nil
}

func (r *DespesaDynamoRepository) List(ctx context.Context) ([]entities.Despesa, error) {
	var despesas []entities.Despesa
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it despesaItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			despesas = append(despesas, fromDespesaItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return despesas, nil
}

func (r *DespesaDynamoRepository) Update(ctx context.Context, d entities.Despesa) (entities.Despesa, error) {
	d.UpdatedAt = time.Now().UTC()
	av, err := attributevalue.MarshalMap(toDespesaItem(d))
	if err != nil {
		return entities.Despesa{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Despesa{}, err
	}
	return d, nil
}

func (r *DespesaDynamoRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}

func toDespesaItem(d entities.Despesa) despesaItem {
	return despesaItem{
		ID:             d.ID,
		Descricao:      d.Descricao,
		Valor:          d.Valor.String(),
		Categoria:      d.Categoria,
		DataVencimento: d.DataVencimento.UTC().Format(time.RFC3339Nano),
		Pago:           d.Pago,
		CreatedAt:      d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDespesaItem(it despesaItem) entities.Despesa {
	valor, _ := decimal.NewFromString(it.Valor)
	vencimento, _ := time.Parse(time.RFC3339Nano, it.DataVencimento)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Despesa{
		ID:             it.ID,
		Descricao:      it.Descricao,
		Valor:          valor,
		Categoria:      it.Categoria,
		DataVencimento: vencimento,
		Pago:           it.Pago,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
