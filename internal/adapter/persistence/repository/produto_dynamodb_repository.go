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

const (
	defaultProdutosTableName = "produtos"
	produtosSKUIndex         = "sku_produto-index"
)

type produtoItem struct {
	ID         int64  `dynamodbav:"id"`
	SKU        string `dynamodbav:"sku_produto"`
	Nome       string `dynamodbav:"nome_produto"`
	PrecoVenda string `dynamodbav:"preco_venda"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// ProdutoDynamoRepository persists Produto entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number, issued by the contadores sequence)
//   - GSI: sku_produto-index (PK: sku_produto) for SKU lookups during import

type ProdutoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProdutoRepository = (*ProdutoDynamoRepository)(nil)

func NewProdutoDynamoRepository(ddb *dynamodb.Client) *ProdutoDynamoRepository {
	return &ProdutoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUTOS_TABLE", defaultProdutosTableName),
	}
}

func (r *ProdutoDynamoRepository) Create(ctx context.Context, p entities.Produto) (entities.Produto, error) {
	id, err := nextID(ctx, r.ddb, "produtos")
	if err != nil {
		return entities.Produto{}, err
	}
	p.ID = id
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toProdutoItem(p))
	if err != nil {
		return entities.Produto{}, err
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
		return entities.Produto{}, err
	}
	return p, nil
}

func (r *ProdutoDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Produto, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Produto{}, err
	}
	if len(out.Item) == 0 {
		return entities.Produto{}, nil
	}

	var it produtoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Produto{}, err
	}
	return fromProdutoItem(it), nil
}

func (r *ProdutoDynamoRepository) GetBySKU(ctx context.Context, sku string) (entities.Produto, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(produtosSKUIndex),
		KeyConditionExpression: aws.String("sku_produto = :sku"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sku": &types.AttributeValueMemberS{Value: sku},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Produto{}, err
	}
	if len(out.Items) == 0 {
		return entities.Produto{}, nil
	}

	var it produtoItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Produto{}, err
	}
	return fromProdutoItem(it), nil
}

func (r *ProdutoDynamoRepository) List(ctx context.Context) ([]entities.Produto, error) {
	var produtos []entities.Produto
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
			var it produtoItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			produtos = append(produtos, fromProdutoItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return produtos, nil
}

func (r *ProdutoDynamoRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}

func toProdutoItem(p entities.Produto) produtoItem {
	return produtoItem{
		ID:         p.ID,
		SKU:        p.SKU,
		Nome:       p.Nome,
		PrecoVenda: p.PrecoVenda.String(),
		CreatedAt:  p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProdutoItem(it produtoItem) entities.Produto {
	preco, _ := decimal.NewFromString(it.PrecoVenda)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Produto{
		ID:         it.ID,
		SKU:        it.SKU,
		Nome:       it.Nome,
		PrecoVenda: preco,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}
