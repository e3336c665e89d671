package http

import (
	"fmt"

	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

func pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return toKernelID(id)
}

// queryInt returns 0 when the parameter is absent.
func queryInt(ctx echo.Context, name string) (int, error) {
	var v *int
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), &v); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("not an integer: %w", err))
	}
	if v == nil {
		return 0, nil
	}
	return *v, nil
}
