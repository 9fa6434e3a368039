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
)

const (
	defaultUsuariosTableName = "usuarios"
	usuariosEmailIndex       = "email_usuario-index"
)

type usuarioItem struct {
	ID        int64  `dynamodbav:"id"`
	Nome      string `dynamodbav:"nome_usuario"`
	Email     string `dynamodbav:"email_usuario"`
	Perfil    string `dynamodbav:"perfil_usuario"`
	Ativo     bool   `dynamodbav:"ativo"`
	SenhaHash string `dynamodbav:"senha_hash"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// UsuarioDynamoRepository persists Usuario entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number, issued by the contadores sequence)
//   - GSI: email_usuario-index (PK: email_usuario) for uniqueness checks

type UsuarioDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUsuarioRepository = (*UsuarioDynamoRepository)(nil)

func NewUsuarioDynamoRepository(ddb *dynamodb.Client) *UsuarioDynamoRepository {
	return &UsuarioDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USUARIOS_TABLE", defaultUsuariosTableName),
	}
}

func (r *UsuarioDynamoRepository) Create(ctx context.Context, u entities.Usuario) (entities.Usuario, error) {
	id, err := nextID(ctx, r.ddb, "usuarios")
	if err != nil {
		return entities.Usuario{}, err
	}
	u.ID = id
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toUsuarioItem(u))
	if err != nil {
		return entities.Usuario{}, err
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
		return entities.Usuario{}, err
	}
	return u, nil
}

func (r *UsuarioDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Usuario, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Usuario{}, err
	}
	if len(out.Item) == 0 {
		return entities.Usuario{}, nil
	}

	var it usuarioItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Usuario{}, err
	}
	return fromUsuarioItem(it), nil
}

func (r *UsuarioDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Usuario, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usuariosEmailIndex),
		KeyConditionExpression: aws.String("email_usuario = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Usuario{}, err
	}
	if len(out.Items) == 0 {
		return entities.Usuario{}, nil
	}

	var it usuarioItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Usuario{}, err
	}
	return fromUsuarioItem(it), nil
}

func (r *UsuarioDynamoRepository) List(ctx context.Context) ([]entities.Usuario, error) {
	var usuarios []entities.Usuario
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
			var it usuarioItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			usuarios = append(usuarios, fromUsuarioItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return usuarios, nil
}

func (r *UsuarioDynamoRepository) Update(ctx context.Context, u entities.Usuario) (entities.Usuario, error) {
	u.UpdatedAt = time.Now().UTC()
	av, err := attributevalue.MarshalMap(toUsuarioItem(u))
	if err != nil {
		return entities.Usuario{}, err
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
		return entities.Usuario{}, err
	}
	return u, nil
}

func (r *UsuarioDynamoRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}

func toUsuarioItem(u entities.Usuario) usuarioItem {
	return usuarioItem{
		ID:        u.ID,
		Nome:      u.Nome,
		Email:     u.Email,
		Perfil:    string(u.Perfil),
		Ativo:     u.Ativo,
		SenhaHash: u.SenhaHash,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: u.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromUsuarioItem(it usuarioItem) entities.Usuario {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Usuario{
		ID:        it.ID,
		Nome:      it.Nome,
		Email:     it.Email,
		Perfil:    entities.PerfilUsuario(it.Perfil),
		Ativo:     it.Ativo,
		SenhaHash: it.SenhaHash,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
