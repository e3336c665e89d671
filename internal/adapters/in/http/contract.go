package http

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var contractYAML []byte

// Contract is the parsed OpenAPI document the server is validated against.
type Contract struct {
	doc    *openapi3.T
	router routers.Router
	json   []byte
}

// LoadContract parses and validates the embedded OpenAPI document.
func LoadContract(ctx context.Context) (*Contract, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(contractYAML)
	if err != nil {
		return nil, fmt.Errorf("load openapi contract: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi contract: %w", err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal openapi contract: %w", err)
	}

	return &Contract{doc: doc, router: router, json: raw}, nil
}

// ReadDoc lets the contract back the swagger UI.
func (c *Contract) ReadDoc() string {
	return string(c.json)
}

// Register makes the contract the document served by echo-swagger.
// swag panics on a second registration under the same name.
func (c *Contract) Register() {
	if _, err := swag.ReadDoc(swag.Name); err == nil {
		return
	}
	swag.Register(swag.Name, c)
}

func (c *Contract) serveYAML(ctx echo.Context) error {
	return ctx.Blob(http.StatusOK, "application/yaml", contractYAML)
}

// ValidateRequests rejects requests that do not satisfy the contract.
// Routes the contract does not describe pass through untouched.
func (c *Contract) ValidateRequests() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := c.router.FindRoute(req)
			if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
				return next(ctx)
			}
			if err != nil {
				return writeError(ctx, http.StatusBadRequest, err.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
					// uploads are streamed to the handler as is
					ExcludeRequestBody: strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm),
				},
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return writeError(ctx, http.StatusBadRequest, err.Error())
			}

			return next(ctx)
		}
	}
}
