package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"insumos_xpto/internal/domain/entities"
	"insumos_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultFormulasTableName    = "formulas"
	formulasProductMachineIndex = "product_machine-index"
	productMachineSeparator     = "#"
)

type variableDeclarationItem struct {
	Name     string `dynamodbav:"name"`
	Type     string `dynamodbav:"type"`
	Required bool   `dynamodbav:"required"`
	Min      string `dynamodbav:"min,omitempty"`
	Max      string `dynamodbav:"max,omitempty"`
}

type formulaItem struct {
	ID             string                    `dynamodbav:"id"`
	ProductID      string                    `dynamodbav:"product_id"`
	MachineID      string                    `dynamodbav:"machine_id"`
	ProductMachine string                    `dynamodbav:"product_machine"`
	Expression     string                    `dynamodbav:"expression"`
	InputSchema    []variableDeclarationItem `dynamodbav:"input_schema"`
	ResultUnit     string                    `dynamodbav:"result_unit"`
	Active         bool                      `dynamodbav:"active"`
	Priority       int                       `dynamodbav:"priority"`
	ResultMin      string                    `dynamodbav:"result_min,omitempty"`
	ResultMax      string                    `dynamodbav:"result_max,omitempty"`
	CreatedAt      string                    `dynamodbav:"created_at"`
	UpdatedAt      string                    `dynamodbav:"updated_at"`
}

// FormulaDynamoRepository persists Formula entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: product_machine-index (PK: product_machine)
//
// product_machine is the composite "<product_id>#<machine_id>" so one Query
// resolves every formula candidate for a pair.

type FormulaDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFormulaRepository = (*FormulaDynamoRepository)(nil)

func NewFormulaDynamoRepository(ddb *dynamodb.Client) *FormulaDynamoRepository {
	return &FormulaDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FORMULAS_TABLE", defaultFormulasTableName),
	}
}

func (r *FormulaDynamoRepository) Create(ctx context.Context, f entities.Formula) (entities.Formula, error) {
	it := toFormulaItem(f)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Formula{}, err
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
		return entities.Formula{}, err
	}
	return f, nil
}

func (r *FormulaDynamoRepository) Update(ctx context.Context, f entities.Formula) (entities.Formula, error) {
	it := toFormulaItem(f)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Formula{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Formula{}, nil
		}
		return entities.Formula{}, err
	}
	return f, nil
}

func (r *FormulaDynamoRepository) SetActive(ctx context.Context, id string, active bool) (entities.Formula, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #active = :active, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active":     &types.AttributeValueMemberBOOL{Value: active},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#active":     "active",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Formula{}, nil
		}
		return entities.Formula{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Formula{}, nil
	}

	var it formulaItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Formula{}, err
	}
	return fromFormulaItem(it), nil
}

func (r *FormulaDynamoRepository) GetByID(ctx context.Context, id string) (entities.Formula, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Formula{}, err
	}
	if len(out.Item) == 0 {
		return entities.Formula{}, nil
	}

	var it formulaItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Formula{}, err
	}
	return fromFormulaItem(it), nil
}

func (r *FormulaDynamoRepository) FindActiveByProductAndMachine(ctx context.Context, productID, machineID string) ([]entities.Formula, error) {
	return r.queryByProductAndMachine(ctx, productID, machineID, true)
}

func (r *FormulaDynamoRepository) FindAllByProductAndMachine(ctx context.Context, productID, machineID string) ([]entities.Formula, error) {
	return r.queryByProductAndMachine(ctx, productID, machineID, false)
}

func (r *FormulaDynamoRepository) queryByProductAndMachine(ctx context.Context, productID, machineID string, activeOnly bool) ([]entities.Formula, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(formulasProductMachineIndex),
		KeyConditionExpression: aws.String("product_machine = :pm"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pm": &types.AttributeValueMemberS{Value: productID + productMachineSeparator + machineID},
		},
	}
	if activeOnly {
		in.FilterExpression = aws.String("active = :active")
		in.ExpressionAttributeValues[":active"] = &types.AttributeValueMemberBOOL{Value: true}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	formulas := make([]entities.Formula, 0, len(out.Items))
	for _, raw := range out.Items {
		var it formulaItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		formulas = append(formulas, fromFormulaItem(it))
	}
	return formulas, nil
}

func toFormulaItem(f entities.Formula) formulaItem {
	schema := make([]variableDeclarationItem, 0, len(f.InputSchema))
	for _, decl := range f.InputSchema {
		schema = append(schema, variableDeclarationItem{
			Name:     decl.Name,
			Type:     string(decl.Type),
			Required: decl.Required,
			Min:      optFloatToString(decl.Min),
			Max:      optFloatToString(decl.Max),
		})
	}

	return formulaItem{
		ID:             f.ID,
		ProductID:      f.ProductID,
		MachineID:      f.MachineID,
		ProductMachine: f.ProductID + productMachineSeparator + f.MachineID,
		Expression:     f.Expression,
		InputSchema:    schema,
		ResultUnit:     f.ResultUnit,
		Active:         f.Active,
		Priority:       f.Priority,
		ResultMin:      optFloatToString(f.ResultMin),
		ResultMax:      optFloatToString(f.ResultMax),
		CreatedAt:      f.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      f.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromFormulaItem(it formulaItem) entities.Formula {
	schema := make([]entities.VariableDeclaration, 0, len(it.InputSchema))
	for _, decl := range it.InputSchema {
		schema = append(schema, entities.VariableDeclaration{
			Name:     decl.Name,
			Type:     entities.VariableType(decl.Type),
			Required: decl.Required,
			Min:      parseOptFloat(decl.Min),
			Max:      parseOptFloat(decl.Max),
		})
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Formula{
		ID:          it.ID,
		ProductID:   it.ProductID,
		MachineID:   it.MachineID,
		Expression:  it.Expression,
		InputSchema: schema,
		ResultUnit:  it.ResultUnit,
		Active:      it.Active,
		Priority:    it.Priority,
		ResultMin:   parseOptFloat(it.ResultMin),
		ResultMax:   parseOptFloat(it.ResultMax),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

func optFloatToString(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func parseOptFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
