package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/unicsmcr/bizdash/authorization"
	"github.com/unicsmcr/bizdash/entities"
	"github.com/unicsmcr/bizdash/resources"
	"github.com/unicsmcr/bizdash/routers/api/models"
	"github.com/unicsmcr/bizdash/services"
	"github.com/unicsmcr/bizdash/utils/export"
	"go.uber.org/zap"
)

const totalCountHeader = "X-Total-Count"

// resolveResource returns the session of the request and the resource named by the
// url params. It responds to the request and returns false when either is unavailable.
func (r *apiV1Router) resolveResource(ctx *gin.Context) (entities.Session, resources.Resource, bool) {
	session, ok := authorization.SessionFromContext(ctx)
	if !ok {
		r.HandleUnauthorized(ctx)
		return entities.Session{}, resources.Resource{}, false
	}

	resource, err := r.catalog.Get(ctx.Param("module"), ctx.Param("name"))
	if err != nil {
		r.logger.Debug("unknown resource requested", zap.Error(err))
		models.SendAPIError(ctx, http.StatusNotFound, "resource not found")
		return entities.Session{}, resources.Resource{}, false
	}

	if !resource.AllowedFor(session.Roles) {
		r.logger.Debug("resource not allowed for session", zap.String("resource", resource.Key()),
			zap.String("email", session.Email))
		r.HandleForbidden(ctx)
		return entities.Session{}, resources.Resource{}, false
	}

	return session, resource, true
}

func parseListQuery(ctx *gin.Context) (services.ListQuery, error) {
	var req struct {
		Search   string `form:"search"`
		Sort     string `form:"sort"`
		Order    string `form:"order"`
		Page     string `form:"page"`
		PageSize string `form:"pageSize"`
	}
	err := ctx.ShouldBindQuery(&req)
	if err != nil {
		return services.ListQuery{}, err
	}

	query := services.ListQuery{
		Search: req.Search,
		Sort:   req.Sort,
	}

	switch req.Order {
	case "", "asc":
	case "desc":
		query.Desc = true
	default:
		return services.ListQuery{}, errors.Errorf("invalid order %q", req.Order)
	}

	if len(req.Page) > 0 {
		query.Page, err = strconv.Atoi(req.Page)
		if err != nil {
			return services.ListQuery{}, errors.Errorf("invalid page %q", req.Page)
		}
	}
	if len(req.PageSize) > 0 {
		query.PageSize, err = strconv.Atoi(req.PageSize)
		if err != nil {
			return services.ListQuery{}, errors.Errorf("invalid page size %q", req.PageSize)
		}
	}

	return query, nil
}

// GET: /api/v1/resources/:module/:name
// Request:  search string (optional)
//           sort string (optional)
//           order string (asc|desc, optional)
//           page int (optional)
//           pageSize int (optional)
// Response: data []object
//           totalRows int
//           totalPages int
//           currentPage int
//           pageSize int
//           fields []resources.Field
// Headers:  Authorization -> token
func (r *apiV1Router) ListResource(ctx *gin.Context) {
	session, resource, ok := r.resolveResource(ctx)
	if !ok {
		return
	}

	query, err := parseListQuery(ctx)
	if err != nil {
		r.logger.Debug("could not parse list request", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	result, err := r.resourceService.List(ctx.Request.Context(), session, resource, query)
	if err != nil {
		r.sendResourceError(ctx, "could not list resource", err)
		return
	}

	ctx.JSON(http.StatusOK, listResourceRes{
		Response: models.Response{
			Status: http.StatusOK,
		},
		Page:   result.Page,
		Fields: resource.Fields,
	})
}

// GET: /api/v1/resources/:module/:name/export
// Request:  format string (csv|xlsx, optional, defaults to csv)
//           search string (optional)
//           sort string (optional)
//           order string (asc|desc, optional)
// Response: attachment with every row matching search
// Headers:  Authorization -> token
func (r *apiV1Router) ExportResource(ctx *gin.Context) {
	session, resource, ok := r.resolveResource(ctx)
	if !ok {
		return
	}

	format, err := export.ParseFormat(ctx.Query("format"))
	if err != nil {
		r.logger.Debug("unsupported export format", zap.String("format", ctx.Query("format")))
		models.SendAPIError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	query, err := parseListQuery(ctx)
	if err != nil {
		r.logger.Debug("could not parse export request", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	result, err := r.resourceService.List(ctx.Request.Context(), session, resource, query)
	if err != nil {
		r.sendResourceError(ctx, "could not list resource for export", err)
		return
	}

	var buf bytes.Buffer
	switch format {
	case export.XLSXFormat:
		err = export.XLSX(&buf, export.SheetName(resource.Title), resource.Fields, result.Rows)
	default:
		err = export.CSV(&buf, resource.Fields, result.Rows)
	}
	if err != nil {
		r.logger.Error("could not write export", zap.String("resource", resource.Key()), zap.Error(err))
		models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		return
	}

	fileName := export.FileName(resource, format, r.timeProvider.Now())
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	ctx.Header(totalCountHeader, strconv.Itoa(len(result.Rows)))
	ctx.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// GET: /api/v1/resources/:module/:name/:id
// Response: item object
//           view []resources.ViewItem
// Headers:  Authorization -> token
func (r *apiV1Router) GetResourceItem(ctx *gin.Context) {
	session, resource, ok := r.resolveResource(ctx)
	if !ok {
		return
	}

	record, err := r.resourceService.Get(ctx.Request.Context(), session, resource, ctx.Param("id"))
	if err != nil {
		r.sendResourceError(ctx, "could not get resource item", err)
		return
	}

	ctx.JSON(http.StatusOK, getResourceItemRes{
		Response: models.Response{
			Status: http.StatusOK,
		},
		Item: record,
		View: resources.View(resource, record),
	})
}
