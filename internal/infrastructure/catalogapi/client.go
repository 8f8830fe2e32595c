package catalogapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-admin/internal/application/ports"
	"github.com/jhoicas/Catalogo-admin/internal/domain"
	"github.com/jhoicas/Catalogo-admin/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Catalogo-admin/pkg/jwt"
	"github.com/jhoicas/Catalogo-admin/pkg/logger"
	"github.com/jhoicas/Catalogo-admin/pkg/requestid"
)

// Verificar en tiempo de compilación que Client implementa los puertos.
var (
	_ ports.MutationGateway = (*Client)(nil)
	_ ports.CatalogReader   = (*Client)(nil)
)

const serviceTokenTTL = time.Minute

// Options configuración del cliente.
type Options struct {
	BaseURL       string
	Timeout       time.Duration
	ServiceSecret string // vacío = sin Authorization
	ServiceIssuer string
	Debug         bool
}

// Client adaptador resty hacia el servicio de catálogo remoto.
// Es la única entrada de red del sistema: MutationGateway + CatalogReader.
type Client struct {
	rc  *resty.Client
	log *logger.Logger
}

// NewClient construye el cliente con timeout, cabeceras comunes y token de servicio opcional.
func NewClient(opts Options, log *logger.Logger) *Client {
	rc := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetDebug(opts.Debug).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "catalog-admin/1.0")

	if opts.ServiceSecret != "" {
		rc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			tok, err := pkgjwt.Generate(opts.ServiceSecret, "catalog-admin", opts.ServiceIssuer, serviceTokenTTL)
			if err != nil {
				return err
			}
			r.SetAuthToken(tok)
			return nil
		})
	}

	return &Client{rc: rc, log: log.Component("catalogapi")}
}

// envelope respuesta exitosa del servicio: {"data": ...}.
type envelope[T any] struct {
	Data T `json:"data"`
}

// apiError cuerpo de error del servicio: {"message": "..."}.
type apiError struct {
	Message string `json:"message"`
}

// ── Cuerpos de petición ──────────────────────────────────────────────────────

type categoryPayload struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"` // null = raíz
}

type attributePayload struct {
	Name string `json:"name"`
}

type attributeValuePayload struct {
	AttributeID string `json:"attribute_id"`
	Value       string `json:"value"`
}

type variantPayload struct {
	ProductID       string                         `json:"product_id"`
	AttributeValues []entity.VariantAttributeValue `json:"attribute_values"`
	Price           json.Number                    `json:"price"`
	Stock           int64                          `json:"stock"`
	Status          entity.VariantStatus           `json:"status"`
}

// ── MutationGateway ──────────────────────────────────────────────────────────

// UpsertCategory crea (POST) o actualiza (PUT) una categoría.
func (c *Client) UpsertCategory(ctx context.Context, in ports.CategoryMutation) (*entity.Category, error) {
	body := categoryPayload{Name: in.Name}
	if parent := entity.NormalizeParent(in.ParentID); !parent.IsZero() {
		p := string(parent)
		body.ParentID = &p
	}
	var out envelope[entity.Category]
	if err := c.upsert(ctx, "upsertCategory", "/categories", in.ID, body, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// DeleteCategory borra una categoría. Solo se llama tras pasar el DeletionGuard.
func (c *Client) DeleteCategory(ctx context.Context, id entity.ID) error {
	_, err := c.do(ctx, "deleteCategory", c.mutation(ctx).SetPathParam("id", string(id)), http.MethodDelete, "/categories/{id}")
	return err
}

// UpsertAttribute crea o renombra un atributo.
func (c *Client) UpsertAttribute(ctx context.Context, in ports.AttributeMutation) (*entity.Attribute, error) {
	var out envelope[entity.Attribute]
	if err := c.upsert(ctx, "upsertAttribute", "/attributes", in.ID, attributePayload{Name: in.Name}, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// UpsertAttributeValue crea o actualiza un valor de atributo.
func (c *Client) UpsertAttributeValue(ctx context.Context, in ports.AttributeValueMutation) (*entity.AttributeValue, error) {
	body := attributeValuePayload{AttributeID: string(in.AttributeID), Value: in.Value}
	var out envelope[entity.AttributeValue]
	if err := c.upsert(ctx, "upsertAttributeValue", "/attribute-values", in.ID, body, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// UpsertVariant envía la variante ya compuesta y validada.
func (c *Client) UpsertVariant(ctx context.Context, v entity.Variant) (*entity.Variant, error) {
	body := variantPayload{
		ProductID:       string(v.ProductID),
		AttributeValues: v.AttributeValues,
		Price:           json.Number(v.Price.String()),
		Stock:           v.Stock,
		Status:          v.Status,
	}
	var out envelope[entity.Variant]
	if err := c.upsert(ctx, "upsertVariant", "/variants", v.ID, body, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// ── CatalogReader ────────────────────────────────────────────────────────────

// ListCategories devuelve la colección plana de categorías.
func (c *Client) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var out envelope[[]entity.Category]
	if _, err := c.do(ctx, "listCategories", c.rc.R().SetResult(&out), http.MethodGet, "/categories"); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// ListAttributes devuelve los atributos con sus valores en orden.
func (c *Client) ListAttributes(ctx context.Context) ([]entity.Attribute, error) {
	var out envelope[[]entity.Attribute]
	if _, err := c.do(ctx, "listAttributes", c.rc.R().SetResult(&out), http.MethodGet, "/attributes"); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// GetVariant devuelve nil, nil si el servicio responde 404.
func (c *Client) GetVariant(ctx context.Context, id entity.ID) (*entity.Variant, error) {
	var out envelope[entity.Variant]
	req := c.rc.R().SetResult(&out).SetPathParam("id", string(id))
	resp, err := c.do(ctx, "getVariant", req, http.MethodGet, "/variants/{id}")
	if err != nil {
		if resp != nil && resp.StatusCode() == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &out.Data, nil
}

// ── Internos ─────────────────────────────────────────────────────────────────

// mutation petición con X-Request-ID: el de la petición entrante si viaja en ctx, si no uno nuevo.
func (c *Client) mutation(ctx context.Context) *resty.Request {
	id := requestid.FromContext(ctx)
	if id == "" {
		id = uuid.NewString()
	}
	return c.rc.R().SetHeader(requestid.Header, id)
}

// upsert POST {collection} si id está vacío; PUT {collection}/{id} en otro caso.
func (c *Client) upsert(ctx context.Context, op, collection string, id entity.ID, body, result any) error {
	req := c.mutation(ctx).SetBody(body).SetResult(result)
	if id.IsZero() {
		_, err := c.do(ctx, op, req, http.MethodPost, collection)
		return err
	}
	req.SetPathParam("id", string(id))
	_, err := c.do(ctx, op, req, http.MethodPut, collection+"/{id}")
	return err
}

// do ejecuta la petición y traduce cualquier falla a *domain.RemoteError.
// Con respuesta de error devuelve también resp para que el llamador inspeccione el status.
func (c *Client) do(ctx context.Context, op string, req *resty.Request, method, path string) (*resty.Response, error) {
	var apiErr apiError
	resp, err := req.SetContext(ctx).SetError(&apiErr).Execute(method, path)
	if err != nil {
		c.log.Warn().Err(err).Str("op", op).Msg("servicio de catálogo inaccesible")
		return nil, &domain.RemoteError{Op: op, Message: domain.GenericRemoteMessage}
	}
	if resp.IsError() {
		msg := ExtractMessage(apiErr.Message, resp.Body())
		c.log.Warn().Str("op", op).Int("status", resp.StatusCode()).Str("message", msg).Msg("servicio de catálogo rechazó la petición")
		return resp, &domain.RemoteError{Op: op, Status: resp.StatusCode(), Message: msg}
	}
	return resp, nil
}
