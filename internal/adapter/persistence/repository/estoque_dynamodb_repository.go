package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	"github.com/Luke2905/sistema-avivar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/shopspring/decimal"
)

const defaultEstoqueTableName = "estoque"

type materiaItem struct {
	ID            int64                 `dynamodbav:"id"`
	SKU           string                `dynamodbav:"sku_materia"`
	Nome          string                `dynamodbav:"nome_materia"`
	UnidadeMedida string                `dynamodbav:"unidade_medida"`
	CustoUnitario string                `dynamodbav:"custo_unitario"`
	SaldoEstoque  attributevalue.Number `dynamodbav:"saldo_estoque"`
	EstoqueMinimo string                `dynamodbav:"estoque_minimo"`
	Fornecedor    string                `dynamodbav:"fornecedor,omitempty"`
	CreatedAt     string                `dynamodbav:"created_at"`
	UpdatedAt     string                `dynamodbav:"updated_at"`
}

// EstoqueDynamoRepository persists Materia entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number, issued by the contadores sequence)
//
// Saldo is stored as an N attribute so DynamoDB can compare and subtract it
// inside condition/update expressions; attributevalue.Number keeps the
// decimal digits intact through marshaling.

type EstoqueDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstoqueRepository = (*EstoqueDynamoRepository)(nil)

func NewEstoqueDynamoRepository(ddb *dynamodb.Client) *EstoqueDynamoRepository {
	return &EstoqueDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTOQUE_TABLE", defaultEstoqueTableName),
	}
}

func (r *EstoqueDynamoRepository) Create(ctx context.Context, m entities.Materia) (entities.Materia, error) {
	id, err := nextID(ctx, r.ddb, "estoque")
	if err != nil {
		return entities.Materia{}, err
	}
	m.ID = id
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toMateriaItem(m))
	if err != nil {
		return entities.Materia{}, err
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
		return entities.Materia{}, err
	}
	return m, nil
}

func (r *EstoqueDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Materia, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Materia{}, err
	}
	if len(out.Item) == 0 {
		return entities.Materia{}, nil
	}

	var it materiaItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Materia{}, err
	}
	return fromMateriaItem(it), nil
}

func (r *EstoqueDynamoRepository) List(ctx context.Context) ([]entities.Materia, error) {
	var materias []entities.Materia
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
			var it materiaItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			materias = append(materias, fromMateriaItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return materias, nil
}

func (r *EstoqueDynamoRepository) Update(ctx context.Context, m entities.Materia) (entities.Materia, error) {
	m.UpdatedAt = time.Now().UTC()
	av, err := attributevalue.MarshalMap(toMateriaItem(m))
	if err != nil {
		return entities.Materia{}, err
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
		return entities.Materia{}, err
	}
	return m, nil
}

// AtualizarSaldo grava o saldo absoluto informado na contagem de inventário.
func (r *EstoqueDynamoRepository) AtualizarSaldo(ctx context.Context, id int64, novoSaldo decimal.Decimal) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #saldo = :saldo, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#saldo":      "saldo_estoque",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":saldo":      &types.AttributeValueMemberN{Value: novoSaldo.String()},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
	})
	return err
}

// CreditarSaldo soma a quantidade comprada ao saldo e troca o custo unitário
// pelo custo da compra, em um único UpdateItem.
func (r *EstoqueDynamoRepository) CreditarSaldo(ctx context.Context, id int64, qtd decimal.Decimal, novoCusto decimal.Decimal) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #saldo = #saldo + :qtd, #custo = :custo, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#saldo":      "saldo_estoque",
			"#custo":      "custo_unitario",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qtd":        &types.AttributeValueMemberN{Value: qtd.String()},
			":custo":      &types.AttributeValueMemberS{Value: novoCusto.String()},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
	})
	return err
}

// DebitarSaldos subtracts every debit in one TransactWriteItems call. Each
// item carries a saldo >= quantidade condition, so the batch is all-or-
// nothing: one short material cancels the whole transaction.
func (r *EstoqueDynamoRepository) DebitarSaldos(ctx context.Context, debitos []entities.DebitoInsumo) error {
	if len(debitos) == 0 {
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	items := make([]types.TransactWriteItem, 0, len(debitos))
	for _, deb := range debitos {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(r.tableName),
				Key:                 idKey(deb.IDMateria),
				ConditionExpression: aws.String("attribute_exists(#id) AND #saldo >= :qtd"),
				UpdateExpression:    aws.String("SET #saldo = #saldo - :qtd, #updated_at = :updated_at"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#saldo":      "saldo_estoque",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":qtd":        &types.AttributeValueMemberN{Value: deb.Quantidade.String()},
					":updated_at": &types.AttributeValueMemberS{Value: now},
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			for i, reason := range canceled.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" && i < len(debitos) {
					return fmt.Errorf("%w: %s", interfaces.ErrSaldoInsuficiente, debitos[i].NomeInsumo)
				}
			}
			return fmt.Errorf("%w", interfaces.ErrSaldoInsuficiente)
		}
		return err
	}
	return nil
}

func (r *EstoqueDynamoRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}

func toMateriaItem(m entities.Materia) materiaItem {
	return materiaItem{
		ID:            m.ID,
		SKU:           m.SKU,
		Nome:          m.Nome,
		UnidadeMedida: m.UnidadeMedida,
		CustoUnitario: m.CustoUnitario.String(),
		SaldoEstoque:  attributevalue.Number(m.SaldoEstoque.String()),
		EstoqueMinimo: m.EstoqueMinimo.String(),
		Fornecedor:    m.Fornecedor,
		CreatedAt:     m.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     m.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromMateriaItem(it materiaItem) entities.Materia {
	custo, _ := decimal.NewFromString(it.CustoUnitario)
	saldo, _ := decimal.NewFromString(string(it.SaldoEstoque))
	minimo, _ := decimal.NewFromString(it.EstoqueMinimo)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Materia{
		ID:            it.ID,
		SKU:           it.SKU,
		Nome:          it.Nome,
		UnidadeMedida: it.UnidadeMedida,
		CustoUnitario: custo,
		SaldoEstoque:  saldo,
		EstoqueMinimo: minimo,
		Fornecedor:    it.Fornecedor,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
