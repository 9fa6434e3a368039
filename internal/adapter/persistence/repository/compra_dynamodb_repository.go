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

const defaultComprasTableName = "compras"

type compraItem struct {
	ID            int64  `dynamodbav:"id"`
	IDMateria     int64  `dynamodbav:"id_materia"`
	NomeMateria   string `dynamodbav:"nome_materia"`
	SKUMateria    string `dynamodbav:"sku_materia"`
	UnidadeMedida string `dynamodbav:"unidade_medida"`
	QtdComprada   string `dynamodbav:"qtd_comprada"`
	CustoTotal    string `dynamodbav:"custo_total"`
	Fornecedor    string `dynamodbav:"fornecedor,omitempty"`
	Observacoes   string `dynamodbav:"observacoes,omitempty"`
	DataCompra    string `dynamodbav:"data_compra"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// CompraDynamoRepository persists Compra records in DynamoDB.
//
// Table requirements:
//   - PK: id (number, issued by the contadores sequence)
//
// Compras are append-only; the saldo/custo side effects live in the estoque
// repository.

type CompraDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICompraRepository = (*CompraDynamoRepository)(nil)

func NewCompraDynamoRepository(ddb *dynamodb.Client) *CompraDynamoRepository {
	return &CompraDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COMPRAS_TABLE", defaultComprasTableName),
	}
}

func (r *CompraDynamoRepository) Create(ctx context.Context, c entities.Compra) (entities.Compra, error) {
	id, err := nextID(ctx, r.ddb, "compras")
	if err != nil {
		return entities.Compra{}, err
	}
	c.ID = id
	c.CreatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toCompraItem(c))
	if err != nil {
		return entities.Compra{}, err
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
		return entities.Compra{}, err
	}
	return c, nil
}

func (r *CompraDynamoRepository) List(ctx context.Context) ([]entities.Compra, error) {
	var compras []entities.Compra
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
			var it compraItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			compras = append(compras, fromCompraItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return compras, nil
}

func toCompraItem(c entities.Compra) compraItem {
	return compraItem{
		ID:            c.ID,
		IDMateria:     c.IDMateria,
		NomeMateria:   c.NomeMateria,
		SKUMateria:    c.SKUMateria,
		UnidadeMedida: c.UnidadeMedida,
		QtdComprada:   c.QtdComprada.String(),
		CustoTotal:    c.CustoTotal.String(),
		Fornecedor:    c.Fornecedor,
		Observacoes:   c.Observacoes,
		DataCompra:    c.DataCompra.UTC().Format(time.RFC3339Nano),
		CreatedAt:     c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCompraItem(it compraItem) entities.Compra {
	qtd, _ := decimal.NewFromString(it.QtdComprada)
	custo, _ := decimal.NewFromString(it.CustoTotal)
	dataCompra, _ := time.Parse(time.RFC3339Nano, it.DataCompra)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Compra{
		ID:            it.ID,
		IDMateria:     it.IDMateria,
		NomeMateria:   it.NomeMateria,
		SKUMateria:    it.SKUMateria,
		UnidadeMedida: it.UnidadeMedida,
		QtdComprada:   qtd,
		CustoTotal:    custo,
		Fornecedor:    it.Fornecedor,
		Observacoes:   it.Observacoes,
		DataCompra:    dataCompra,
		CreatedAt:     createdAt,
	}
}
