package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	"github.com/Luke2905/sistema-avivar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPagamentosTableName = "pagamentos"
	pagamentosPedidoIndex      = "id_pedido-index"
)

type pagamentoItem struct {
	ID           string                 `dynamodbav:"id"`
	IDPedido     int64                  `dynamodbav:"id_pedido"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// PagamentoDynamoRepository persists Pagamento entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, the provider payment id)
//   - GSI: id_pedido-index (PK: id_pedido)

type PagamentoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPagamentoRepository = (*PagamentoDynamoRepository)(nil)

func NewPagamentoDynamoRepository(ddb *dynamodb.Client) *PagamentoDynamoRepository {
	return &PagamentoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAGAMENTOS_TABLE", defaultPagamentosTableName),
	}
}

func (r *PagamentoDynamoRepository) Create(ctx context.Context, p entities.Pagamento) (entities.Pagamento, error) {
	it := toPagamentoItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Pagamento{}, err
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
		return entities.Pagamento{}, err
	}
	return p, nil
}

func (r *PagamentoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Pagamento, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Pagamento{}, err
	}
	if len(out.Item) == 0 {
		return entities.Pagamento{}, nil
	}

	var it pagamentoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Pagamento{}, err
	}
	return fromPagamentoItem(it), nil
}

func (r *PagamentoDynamoRepository) ListByPedido(ctx context.Context, pedidoID int64) ([]entities.Pagamento, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(pagamentosPedidoIndex),
		KeyConditionExpression: aws.String("id_pedido = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberN{Value: strconv.FormatInt(pedidoID, 10)},
		},
	})
	if err != nil {
		return nil, err
	}

	pagamentos := make([]entities.Pagamento, 0, len(out.Items))
	for _, raw := range out.Items {
		var it pagamentoItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		pagamentos = append(pagamentos, fromPagamentoItem(it))
	}
	return pagamentos, nil
}

func toPagamentoItem(p entities.Pagamento) pagamentoItem {
	return pagamentoItem{
		ID:           p.ID,
		IDPedido:     p.IDPedido,
		Date:         p.Date.UTC().Format(time.RFC3339Nano),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromPagamentoItem(it pagamentoItem) entities.Pagamento {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.Pagamento{
		ID:           it.ID,
		IDPedido:     it.IDPedido,
		Date:         dt,
		Status:       entities.StatusPagamento(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
