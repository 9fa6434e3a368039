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
	defaultPedidosTableName = "pedidos"
	pedidosStatusIndex      = "status_pedido-index"
)

type pedidoItemAttr struct {
	ID            int64  `dynamodbav:"id_item"`
	IDProduto     int64  `dynamodbav:"id_produto"`
	SKUProduto    string `dynamodbav:"sku_produto"`
	NomeProduto   string `dynamodbav:"nome_produto"`
	Quantidade    int    `dynamodbav:"quantidade"`
	ValorUnitario string `dynamodbav:"valor_unitario"`
}

type pedidoItem struct {
	ID                  int64            `dynamodbav:"id"`
	NumPedidoPlataforma string           `dynamodbav:"num_pedido_plataforma"`
	NomeCliente         string           `dynamodbav:"nome_cliente"`
	PlataformaOrigem    string           `dynamodbav:"plataforma_origem"`
	ValorTotal          string           `dynamodbav:"valor_total"`
	Status              string           `dynamodbav:"status_pedido"`
	DataPedido          string           `dynamodbav:"data_pedido"`
	NumNotaFiscal       string           `dynamodbav:"num_nota_fiscal,omitempty"`
	ResponsavelProducao string           `dynamodbav:"responsavel_producao,omitempty"`
	Itens               []pedidoItemAttr `dynamodbav:"itens"`
	CreatedAt           string           `dynamodbav:"created_at"`
	UpdatedAt           string           `dynamodbav:"updated_at"`
}

// PedidoDynamoRepository persists Pedido aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (number, issued by the contadores sequence)
//   - GSI: status_pedido-index (PK: status_pedido) for the Kanban columns
//
// Itens live inside the pedido item as a DynamoDB list; the aggregate is
// always read and written whole. Money fields are stored as strings to keep
// decimal exactness.

type PedidoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPedidoRepository = (*PedidoDynamoRepository)(nil)

func NewPedidoDynamoRepository(ddb *dynamodb.Client) *PedidoDynamoRepository {
	return &PedidoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PEDIDOS_TABLE", defaultPedidosTableName),
	}
}

func (r *PedidoDynamoRepository) Create(ctx context.Context, p entities.Pedido) (entities.Pedido, error) {
	id, err := nextID(ctx, r.ddb, "pedidos")
	if err != nil {
		return entities.Pedido{}, err
	}
	p.ID = id
	for i := range p.Itens {
		p.Itens[i].ID = int64(i + 1)
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toPedidoItem(p))
	if err != nil {
		return entities.Pedido{}, err
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
		return entities.Pedido{}, err
	}
	return p, nil
}

func (r *PedidoDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Pedido, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Pedido{}, err
	}
	if len(out.Item) == 0 {
		return entities.Pedido{}, nil
	}

	var it pedidoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Pedido{}, err
	}
	return fromPedidoItem(it), nil
}

func (r *PedidoDynamoRepository) List(ctx context.Context) ([]entities.Pedido, error) {
	var pedidos []entities.Pedido
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
			var it pedidoItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			pedidos = append(pedidos, fromPedidoItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return pedidos, nil
}

func (r *PedidoDynamoRepository) ListByStatus(ctx context.Context, status entities.StatusPedido) ([]entities.Pedido, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(pedidosStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status_pedido",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}

	pedidos := make([]entities.Pedido, 0, len(out.Items))
	for _, raw := range out.Items {
		var it pedidoItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		pedidos = append(pedidos, fromPedidoItem(it))
	}
	return pedidos, nil
}

func (r *PedidoDynamoRepository) Update(ctx context.Context, p entities.Pedido) (entities.Pedido, error) {
	p.UpdatedAt = time.Now().UTC()
	av, err := attributevalue.MarshalMap(toPedidoItem(p))
	if err != nil {
		return entities.Pedido{}, err
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
		return entities.Pedido{}, err
	}
	return p, nil
}

func (r *PedidoDynamoRepository) UpdateStatus(ctx context.Context, id int64, status entities.StatusPedido) error {
	return r.updateField(ctx, id, "status_pedido", &types.AttributeValueMemberS{Value: string(status)})
}

func (r *PedidoDynamoRepository) UpdateNotaFiscal(ctx context.Context, id int64, numeroNota string) error {
	if numeroNota == "" {
		return r.removeField(ctx, id, "num_nota_fiscal")
	}
	return r.updateField(ctx, id, "num_nota_fiscal", &types.AttributeValueMemberS{Value: numeroNota})
}

func (r *PedidoDynamoRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}

func (r *PedidoDynamoRepository) updateField(ctx context.Context, id int64, field string, value types.AttributeValue) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #campo = :valor, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#campo":      field,
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":valor":      value,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
	})
	return err
}

func (r *PedidoDynamoRepository) removeField(ctx context.Context, id int64, field string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("REMOVE #campo SET #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#campo":      field,
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
	})
	return err
}

func toPedidoItem(p entities.Pedido) pedidoItem {
	itens := make([]pedidoItemAttr, 0, len(p.Itens))
	for _, item := range p.Itens {
		itens = append(itens, pedidoItemAttr{
			ID:            item.ID,
			IDProduto:     item.IDProduto,
			SKUProduto:    item.SKUProduto,
			NomeProduto:   item.NomeProduto,
			Quantidade:    item.Quantidade,
			ValorUnitario: item.ValorUnitario.String(),
		})
	}
	return pedidoItem{
		ID:                  p.ID,
		NumPedidoPlataforma: p.NumPedidoPlataforma,
		NomeCliente:         p.NomeCliente,
		PlataformaOrigem:    p.PlataformaOrigem,
		ValorTotal:          p.ValorTotal.String(),
		Status:              string(p.Status),
		DataPedido:          p.DataPedido.UTC().Format(time.RFC3339Nano),
		NumNotaFiscal:       p.NumNotaFiscal,
		ResponsavelProducao: p.ResponsavelProducao,
		Itens:               itens,
		CreatedAt:           p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPedidoItem(it pedidoItem) entities.Pedido {
	itens := make([]entities.PedidoItem, 0, len(it.Itens))
	for _, item := range it.Itens {
		valor, _ := decimal.NewFromString(item.ValorUnitario)
		itens = append(itens, entities.PedidoItem{
			ID:            item.ID,
			IDProduto:     item.IDProduto,
			SKUProduto:    item.SKUProduto,
			NomeProduto:   item.NomeProduto,
			Quantidade:    item.Quantidade,
			ValorUnitario: valor,
		})
	}
	total, _ := decimal.NewFromString(it.ValorTotal)
	dataPedido, _ := time.Parse(time.RFC3339Nano, it.DataPedido)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Pedido{
		ID:                  it.ID,
		NumPedidoPlataforma: it.NumPedidoPlataforma,
		NomeCliente:         it.NomeCliente,
		PlataformaOrigem:    it.PlataformaOrigem,
		ValorTotal:          total,
		Status:              entities.StatusPedido(it.Status),
		DataPedido:          dataPedido,
		NumNotaFiscal:       it.NumNotaFiscal,
		ResponsavelProducao: it.ResponsavelProducao,
		Itens:               itens,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}
