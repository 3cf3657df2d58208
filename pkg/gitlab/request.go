package gitlab

import (
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ParamKind определяет, куда попадает параметр при отправке запроса.
type ParamKind int

const (
	// ParamAuto: query для GET/HEAD/DELETE, тело формы для остальных методов.
	ParamAuto ParamKind = iota
	// ParamQuery: всегда в query string.
	ParamQuery
	// ParamBody: всегда в теле запроса.
	ParamBody
	// ParamHeader: HTTP заголовок.
	ParamHeader
)

// String возвращает имя вида параметра для логов и сообщений тестов.
func (k ParamKind) String() string {
	switch k {
	case ParamAuto:
		return "auto"
	case ParamQuery:
		return "query"
	case ParamBody:
		return "body"
	case ParamHeader:
		return "header"
	default:
		return "unknown"
	}
}

// Param: именованный параметр запроса в wire-представлении.
type Param struct {
	// Name: имя параметра (snake_case для query/body, camelCase для сегментов URL)
	Name string
	// Value: строковое значение параметра
	Value string
	// Kind: расположение параметра
	Kind ParamKind
}

// Request описывает один вызов API: метод, шаблон ресурса, сегменты URL и параметры.
// Значение неизменяемо: методы-построители возвращают копию.
type Request struct {
	// Method: HTTP метод (GET, POST, PUT, DELETE).
	Method string
	// Resource: шаблон пути относительно корня API, например
	// "projects/{projectId}/repository/branches".
	Resource string
	// Segments: значения плейсхолдеров шаблона в порядке добавления.
	Segments []Param
	// Params: query, body и header параметры в порядке добавления.
	Params []Param
	// Unauthenticated: запрос отправляется без PRIVATE-TOKEN.
	Unauthenticated bool

	// invalid: первая ошибка валидации, обнаруженная при построении.
	invalid error
}

// NewRequest создаёт описание запроса для шаблона ресурса и HTTP метода.
func NewRequest(method, resource string) Request {
	return Request{Method: method, Resource: resource}
}

func (r Request) withSegment(p Param) Request {
	r.Segments = append(slices.Clip(r.Segments), p)
	return r
}

func (r Request) withParam(p Param) Request {
	r.Params = append(slices.Clip(r.Params), p)
	return r
}

// Segment привязывает значение к плейсхолдеру {name} шаблона.
func (r Request) Segment(name, value string) Request {
	return r.withSegment(Param{Name: name, Value: value})
}

// SegmentInt привязывает целочисленное значение к плейсхолдеру {name}.
func (r Request) SegmentInt(name string, value int) Request {
	return r.Segment(name, strconv.Itoa(value))
}

// Param добавляет параметр, расположение которого определяется методом запроса.
func (r Request) Param(name, value string) Request {
	return r.withParam(Param{Name: name, Value: value, Kind: ParamAuto})
}

// ParamInt добавляет целочисленный параметр.
func (r Request) ParamInt(name string, value int) Request {
	return r.Param(name, strconv.Itoa(value))
}

// ParamBool добавляет логический параметр ("true"/"false").
func (r Request) ParamBool(name string, value bool) Request {
	return r.Param(name, strconv.FormatBool(value))
}

// ParamTime добавляет параметр даты-времени в формате RFC 3339 (UTC).
func (r Request) ParamTime(name string, value time.Time) Request {
	return r.Param(name, value.UTC().Format(time.RFC3339))
}

// ParamDate добавляет параметр даты в формате YYYY-MM-DD.
func (r Request) ParamDate(name string, value time.Time) Request {
	return r.Param(name, value.Format(time.DateOnly))
}

// ParamList добавляет параметр со значениями, объединёнными через запятую.
func (r Request) ParamList(name string, values []string) Request {
	return r.Param(name, strings.Join(values, ","))
}

// ParamIf добавляет параметр только если value != nil.
func (r Request) ParamIf(name string, value *string) Request {
	if value == nil {
		return r
	}
	return r.Param(name, *value)
}

// ParamIfInt добавляет целочисленный параметр только если value != nil.
func (r Request) ParamIfInt(name string, value *int) Request {
	if value == nil {
		return r
	}
	return r.ParamInt(name, *value)
}

// ParamIfBool добавляет логический параметр только если value != nil.
func (r Request) ParamIfBool(name string, value *bool) Request {
	if value == nil {
		return r
	}
	return r.ParamBool(name, *value)
}

// ParamIfTime добавляет параметр даты-времени только если value != nil.
func (r Request) ParamIfTime(name string, value *time.Time) Request {
	if value == nil {
		return r
	}
	return r.ParamTime(name, *value)
}

// ParamIfDate добавляет параметр даты только если value != nil.
func (r Request) ParamIfDate(name string, value *time.Time) Request {
	if value == nil {
		return r
	}
	return r.ParamDate(name, *value)
}

// ParamIfList добавляет параметр со списком только если список не пуст.
func (r Request) ParamIfList(name string, values []string) Request {
	if len(values) == 0 {
		return r
	}
	return r.ParamList(name, values)
}

// ParamEnum добавляет параметр перечисления в wire-представлении.
// Неизвестное значение делает запрос недействительным (см. Err).
func (r Request) ParamEnum(name string, value enumValue) Request {
	wire, ok := value.wire()
	if !ok {
		return r.fail(NewValidationError(name, fmt.Sprintf("недопустимое значение %v", value)))
	}
	return r.Param(name, wire)
}

// ParamIfEnum добавляет параметр перечисления, если значение задано.
func (r Request) ParamIfEnum(name string, value enumValue) Request {
	if value == nil || value.unset() {
		return r
	}
	return r.ParamEnum(name, value)
}

// ParamIfEnumList добавляет список значений перечисления через запятую,
// если список не пуст.
func (r Request) ParamIfEnumList(name string, values []enumValue) Request {
	if len(values) == 0 {
		return r
	}
	wires := make([]string, 0, len(values))
	for _, v := range values {
		wire, ok := v.wire()
		if !ok {
			return r.fail(NewValidationError(name, fmt.Sprintf("недопустимое значение %v", v)))
		}
		wires = append(wires, wire)
	}
	return r.ParamList(name, wires)
}

func (r Request) fail(err error) Request {
	if r.invalid == nil {
		r.invalid = err
	}
	return r
}

// Err возвращает ошибку валидации, накопленную при построении запроса.
// Клиент не отправляет запрос, если Err() != nil.
func (r Request) Err() error {
	return r.invalid
}

// Query добавляет параметр, который всегда передаётся в query string.
func (r Request) Query(name, value string) Request {
	return r.withParam(Param{Name: name, Value: value, Kind: ParamQuery})
}

// Header добавляет HTTP заголовок.
func (r Request) Header(name, value string) Request {
	return r.withParam(Param{Name: name, Value: value, Kind: ParamHeader})
}

// Anonymous помечает запрос как не требующий токена.
func (r Request) Anonymous() Request {
	r.Unauthenticated = true
	return r
}

// Paginate добавляет параметры page и per_page.
func (r Request) Paginate(opt ListOptions) Request {
	return r.ParamInt("page", opt.Page).ParamInt("per_page", opt.PerPage)
}

// SegmentValue возвращает значение сегмента по имени.
func (r Request) SegmentValue(name string) (string, bool) {
	for _, s := range r.Segments {
		if s.Name == name {
			return s.Value, true
		}
	}
	return "", false
}

// ParamValue возвращает значение первого параметра с указанным именем
// (кроме заголовков).
func (r Request) ParamValue(name string) (string, bool) {
	for _, p := range r.Params {
		if p.Name == name && p.Kind != ParamHeader {
			return p.Value, true
		}
	}
	return "", false
}

// HeaderValue возвращает значение заголовка по имени.
func (r Request) HeaderValue(name string) (string, bool) {
	for _, p := range r.Params {
		if p.Kind == ParamHeader && strings.EqualFold(p.Name, name) {
			return p.Value, true
		}
	}
	return "", false
}

// HasParam сообщает, присутствует ли параметр с указанным именем.
func (r Request) HasParam(name string) bool {
	_, ok := r.ParamValue(name)
	return ok
}

// Path разворачивает шаблон ресурса, подставляя экранированные значения сегментов.
// Возвращает ошибку, если в шаблоне остался непривязанный плейсхолдер.
func (r Request) Path() (string, error) {
	var b strings.Builder
	rest := r.Resource
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		closing := strings.IndexByte(rest[open:], '}')
		if closing < 0 {
			return "", fmt.Errorf("незакрытый плейсхолдер в шаблоне %q", r.Resource)
		}
		name := rest[open+1 : open+closing]
		value, ok := r.SegmentValue(name)
		if !ok {
			return "", fmt.Errorf("сегмент {%s} не привязан в шаблоне %q", name, r.Resource)
		}
		b.WriteString(rest[:open])
		b.WriteString(url.PathEscape(value))
		rest = rest[open+closing+1:]
	}
	return b.String(), nil
}

// placement определяет фактическое расположение параметра с учётом метода.
func (r Request) placement(p Param) ParamKind {
	if p.Kind != ParamAuto {
		return p.Kind
	}
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodDelete:
		return ParamQuery
	default:
		return ParamBody
	}
}

// Encode раскладывает параметры по query, телу формы и заголовкам.
func (r Request) Encode() (query url.Values, body url.Values, header http.Header) {
	query = url.Values{}
	body = url.Values{}
	header = http.Header{}
	for _, p := range r.Params {
		switch r.placement(p) {
		case ParamQuery:
			query.Add(p.Name, p.Value)
		case ParamBody:
			body.Add(p.Name, p.Value)
		case ParamHeader:
			header.Add(p.Name, p.Value)
		}
	}
	return query, body, header
}

// String возвращает краткое представление запроса "METHOD template".
func (r Request) String() string {
	return r.Method + " " + r.Resource
}
