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
	defaultProducaoTableName = "producao_ordens"
	producaoPedidoIndex      = "id_pedido-index"
	producaoStatusIndex      = "status_op-index"
)

type producaoItem struct {
	ID          int64  `dynamodbav:"id"`
	IDPedido    int64  `dynamodbav:"id_pedido"`
	Codigo      string `dynamodbav:"codigo_visual"`
	Status      string `dynamodbav:"status_op"`
	Responsavel string `dynamodbav:"responsavel,omitempty"`
	DataInicio  string `dynamodbav:"data_inicio,omitempty"`
	DataFim     string `dynamodbav:"data_fim,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ProducaoDynamoRepository persists ProducaoOrdem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number, issued by the contadores sequence)
//   - GSI: id_pedido-index (PK: id_pedido), one OP per pedido
//   - GSI: status_op-index (PK: status_op) for the scanner polling view
type ProducaoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProducaoRepository = (*ProducaoDynamoRepository)(nil)

func NewProducaoDynamoRepository(ddb *dynamodb.Client) *ProducaoDynamoRepository {
	return &ProducaoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCAO_TABLE", defaultProducaoTableName),
	}
}

func (r *ProducaoDynamoRepository) Create(ctx context.Context, op entities.ProducaoOrdem) (entities.ProducaoOrdem, error) {
	id, err := nextID(ctx, r.ddb, "producao")
	if err != nil {
		return entities.ProducaoOrdem{}, err
	}
	op.ID = id
	op.Codigo = entities.CodigoOP(id)
	now := time.Now().UTC()
	op.CreatedAt = now
	op.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toProducaoItem(op))
	if err != nil {
		return entities.ProducaoOrdem{}, err
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
		return entities.ProducaoOrdem{}, err
	}
	return op, nil
}

func (r *ProducaoDynamoRepository) GetByID(ctx context.Context, id int64) (entities.ProducaoOrdem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProducaoOrdem{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProducaoOrdem{}, nil
	}

	var it producaoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProducaoOrdem{}, err
	}
	return fromProducaoItem(it), nil
}

func (r *ProducaoDynamoRepository) GetByPedido(ctx context.Context, pedidoID int64) (entities.ProducaoOrdem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(producaoPedidoIndex),
		KeyConditionExpression: aws.String("id_pedido = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberN{Value: strconv.FormatInt(pedidoID, 10)},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ProducaoOrdem{}, err
	}
	if len(out.Items) == 0 {
		return entities.ProducaoOrdem{}, nil
	}

	var it producaoItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ProducaoOrdem{}, err
	}
	return fromProducaoItem(it), nil
}

func (r *ProducaoDynamoRepository) List(ctx context.Context) ([]entities.ProducaoOrdem, error) {
	var ordens []entities.ProducaoOrdem
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
			var it producaoItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			ordens = append(ordens, fromProducaoItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return ordens, nil
}

func (r *ProducaoDynamoRepository) ListByStatus(ctx context.Context, status entities.StatusOP) ([]entities.ProducaoOrdem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(producaoStatusIndex),
		KeyConditionExpression: aws.String("status_op = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}

	ordens := make([]entities.ProducaoOrdem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it producaoItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		ordens = append(ordens, fromProducaoItem(it))
	}
	return ordens, nil
}

func (r *ProducaoDynamoRepository) Update(ctx context.Context, op entities.ProducaoOrdem) (entities.ProducaoOrdem, error) {
	op.UpdatedAt = time.Now().UTC()
	av, err := attributevalue.MarshalMap(toProducaoItem(op))
	if err != nil {
		return entities.ProducaoOrdem{}, err
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
		return entities.ProducaoOrdem{}, err
	}
	return op, nil
}

func (r *ProducaoDynamoRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}

func toProducaoItem(op entities.ProducaoOrdem) producaoItem {
	it := producaoItem{
		ID:          op.ID,
		IDPedido:    op.IDPedido,
		Codigo:      op.Codigo,
		Status:      string(op.Status),
		Responsavel: op.Responsavel,
		CreatedAt:   op.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   op.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !op.DataInicio.IsZero() {
		it.DataInicio = op.DataInicio.UTC().Format(time.RFC3339Nano)
	}
	if !op.DataFim.IsZero() {
		it.DataFim = op.DataFim.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromProducaoItem(it producaoItem) entities.ProducaoOrdem {
	dataInicio, _ := time.Parse(time.RFC3339Nano, it.DataInicio)
	dataFim, _ := time.Parse(time.RFC3339Nano, it.DataFim)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ProducaoOrdem{
		ID:          it.ID,
		IDPedido:    it.IDPedido,
		Codigo:      it.Codigo,
		Status:      entities.StatusOP(it.Status),
		Responsavel: it.Responsavel,
		DataInicio:  dataInicio,
		DataFim:     dataFim,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
