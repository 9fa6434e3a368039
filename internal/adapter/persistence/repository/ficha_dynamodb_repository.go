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

	"github.com/shopspring/decimal"
)

const (
	defaultFichasTableName = "fichas_tecnicas"
	fichasProdutoIndex     = "id_produto-index"
)

type fichaItem struct {
	ID            int64  `dynamodbav:"id"`
	IDProduto     int64  `dynamodbav:"id_produto"`
	IDMateria     int64  `dynamodbav:"id_materia"`
	NomeMateria   string `dynamodbav:"nome_materia"`
	UnidadeMedida string `dynamodbav:"unidade_medida"`
	QtdConsumo    string `dynamodbav:"qtd_consumo"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// FichaDynamoRepository persists FichaItem rows in DynamoDB.
//
// Table requirements:
//   - PK: id (number, issued by the contadores sequence)
//   - GSI: id_produto-index (PK: id_produto)
//
// CustoUnitario is never stored here; readers join the current custo from the
// estoque table.

type FichaDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFichaRepository = (*FichaDynamoRepository)(nil)

func NewFichaDynamoRepository(ddb *dynamodb.Client) *FichaDynamoRepository {
	return &FichaDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FICHAS_TABLE", defaultFichasTableName),
	}
}

func (r *FichaDynamoRepository) Add(ctx context.Context, f entities.FichaItem) (entities.FichaItem, error) {
	id, err := nextID(ctx, r.ddb, "fichas")
	if err != nil {
		return entities.FichaItem{}, err
	}
	f.ID = id
	f.CreatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toFichaItem(f))
	if err != nil {
		return entities.FichaItem{}, err
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
		return entities.FichaItem{}, err
	}
	return f, nil
}

func (r *FichaDynamoRepository) GetByID(ctx context.Context, id int64) (entities.FichaItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FichaItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.FichaItem{}, nil
	}

	var it fichaItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FichaItem{}, err
	}
	return fromFichaItem(it), nil
}

func (r *FichaDynamoRepository) ListByProduto(ctx context.Context, produtoID int64) ([]entities.FichaItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(fichasProdutoIndex),
		KeyConditionExpression: aws.String("id_produto = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberN{Value: strconv.FormatInt(produtoID, 10)},
		},
	})
	if err != nil {
		return nil, err
	}

	linhas := make([]entities.FichaItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it fichaItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		linhas = append(linhas, fromFichaItem(it))
	}
	return linhas, nil
}

func (r *FichaDynamoRepository) Remove(ctx context.Context, id int64) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}

func toFichaItem(f entities.FichaItem) fichaItem {
	return fichaItem{
		ID:            f.ID,
		IDProduto:     f.IDProduto,
		IDMateria:     f.IDMateria,
		NomeMateria:   f.NomeMateria,
		UnidadeMedida: f.UnidadeMedida,
		QtdConsumo:    f.QtdConsumo.String(),
		CreatedAt:     f.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromFichaItem(it fichaItem) entities.FichaItem {
	consumo, _ := decimal.NewFromString(it.QtdConsumo)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.FichaItem{
		ID:            it.ID,
		IDProduto:     it.IDProduto,
		IDMateria:     it.IDMateria,
		NomeMateria:   it.NomeMateria,
		UnidadeMedida: it.UnidadeMedida,
		QtdConsumo:    consumo,
		CreatedAt:     createdAt,
	}
}
