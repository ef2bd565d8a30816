// Package openapi builds the OpenAPI 3 description of the public API.
package openapi

import (
	"net/http"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"

	"rinha-backend/internal/domains/person/model"
)

const personSchemaRef = "#/components/schemas/Pessoa"

// Document returns the API description for the given service version.
func Document(title, version string) *openapi3.T {
	person := personSchema()
	candidate := candidateSchema()
	personRef := openapi3.NewSchemaRef(personSchemaRef, person)

	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   title,
			Version: version,
		},
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				"Pessoa":          openapi3.NewSchemaRef("", person),
				"PessoaCandidata": openapi3.NewSchemaRef("", candidate),
			},
		},
		Paths: openapi3.NewPaths(
			openapi3.WithPath("/pessoas", &openapi3.PathItem{
				Post: createOperation(candidate),
				Get:  searchOperation(personRef),
			}),
			openapi3.WithPath("/pessoas/{id}", &openapi3.PathItem{
				Get: getOperation(personRef),
			}),
			openapi3.WithPath("/contagem-pessoas", &openapi3.PathItem{
				Get: countOperation(),
			}),
			openapi3.WithPath("/getAllPessoa", &openapi3.PathItem{
				Get: listOperation(personRef),
			}),
		),
	}
}

func personSchema() *openapi3.Schema {
	return candidateSchema().
		WithProperty("id", openapi3.NewStringSchema().WithFormat("uuid"))
}

func candidateSchema() *openapi3.Schema {
	tag := openapi3.NewStringSchema().WithMinLength(1).WithMaxLength(model.MaxStackItemLength)

	schema := openapi3.NewObjectSchema().
		WithProperty("apelido", openapi3.NewStringSchema().WithMinLength(1).WithMaxLength(model.MaxNicknameLength)).
		WithProperty("nome", openapi3.NewStringSchema().WithMinLength(1).WithMaxLength(model.MaxNameLength)).
		WithProperty("nascimento", openapi3.NewStringSchema().WithPattern(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)).
		WithProperty("stack", openapi3.NewArraySchema().WithItems(tag).WithNullable())
	schema.Required = []string{"apelido", "nome", "nascimento"}
	return schema
}

func createOperation(candidate *openapi3.Schema) *openapi3.Operation {
	return &openapi3.Operation{
		OperationID: "createPessoa",
		Summary:     "Create a person",
		RequestBody: &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithRequired(true).
				WithJSONSchemaRef(openapi3.NewSchemaRef("#/components/schemas/PessoaCandidata", candidate)),
		},
		Responses: openapi3.NewResponses(
			status(http.StatusCreated, "Created; Location header points at the new person",
				openapi3.NewObjectSchema().WithProperty("id", openapi3.NewStringSchema().WithFormat("uuid"))),
			status(http.StatusBadRequest, "Malformed JSON body", nil),
			status(http.StatusUnprocessableEntity, "Invalid person or nickname already taken", nil),
		),
	}
}

func searchOperation(personRef *openapi3.SchemaRef) *openapi3.Operation {
	return &openapi3.Operation{
		OperationID: "searchPessoas",
		Summary:     "Case-insensitive substring search on nickname, name and stack",
		Parameters: openapi3.Parameters{
			{Value: openapi3.NewQueryParameter("t").WithRequired(true).WithSchema(openapi3.NewStringSchema())},
		},
		Responses: openapi3.NewResponses(
			statusRef(http.StatusOK, "At most 50 matches", &openapi3.SchemaRef{
				Value: openapi3.NewArraySchema().WithItems(personRef.Value),
			}),
			status(http.StatusBadRequest, "Missing or blank search term", nil),
		),
	}
}

func getOperation(personRef *openapi3.SchemaRef) *openapi3.Operation {
	return &openapi3.Operation{
		OperationID: "getPessoa",
		Summary:     "Fetch a person by id",
		Parameters: openapi3.Parameters{
			{Value: openapi3.NewPathParameter("id").WithSchema(openapi3.NewStringSchema().WithFormat("uuid"))},
		},
		Responses: openapi3.NewResponses(
			statusRef(http.StatusOK, "The person", personRef),
			status(http.StatusNotFound, "Unknown id", nil),
		),
	}
}

func countOperation() *openapi3.Operation {
	ok := openapi3.NewResponse().
		WithDescription("Number of stored people as plain text").
		WithContent(openapi3.NewContentWithSchema(openapi3.NewStringSchema(), []string{"text/plain"}))

	return &openapi3.Operation{
		OperationID: "countPessoas",
		Summary:     "Count stored people",
		Responses:   openapi3.NewResponses(openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{Value: ok})),
	}
}

func listOperation(personRef *openapi3.SchemaRef) *openapi3.Operation {
	return &openapi3.Operation{
		OperationID: "listPessoas",
		Summary:     "List stored people (at most " + strconv.Itoa(model.MaxListSize) + ")",
		Responses: openapi3.NewResponses(
			statusRef(http.StatusOK, "Stored people", &openapi3.SchemaRef{
				Value: openapi3.NewArraySchema().WithItems(personRef.Value),
			}),
		),
	}
}

func status(code int, description string, schema *openapi3.Schema) openapi3.NewResponsesOption {
	if schema == nil {
		return statusRef(code, description, nil)
	}
	return statusRef(code, description, &openapi3.SchemaRef{Value: schema})
}

func statusRef(code int, description string, schema *openapi3.SchemaRef) openapi3.NewResponsesOption {
	resp := openapi3.NewResponse().WithDescription(description)
	if schema != nil {
		resp = resp.WithJSONSchemaRef(schema)
	}
	return openapi3.WithStatus(code, &openapi3.ResponseRef{Value: resp})
}
