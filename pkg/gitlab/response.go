package gitlab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"

	"golang.org/x/text/encoding/htmlindex"
)

// do проверяет накопленные ошибки валидации и исполняет запрос.
// Ответ со статусом вне 2xx даёт (nil, nil): вызывающий получает пустой
// результат. Ошибки транспорта возвращаются без изменений.
func (c *core) do(ctx context.Context, req Request) (*Response, error) {
	resp, err := c.raw(ctx, req)
	if err != nil || resp == nil || !resp.Success() {
		return nil, err
	}
	return resp, nil
}

// raw исполняет запрос и возвращает ответ с любым статусом.
func (c *core) raw(ctx context.Context, req Request) (*Response, error) {
	if err := req.Err(); err != nil {
		return nil, err
	}
	return c.exec.Execute(ctx, req)
}

// decodeJSON разбирает тело ответа. Пустое тело оставляет v нетронутым.
func decodeJSON(req Request, body []byte, v any) (bool, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return false, fmt.Errorf("разбор ответа %s: %w", req, err)
	}
	return true, nil
}

// getOne исполняет запрос и декодирует один объект.
// Пустое тело ответа даёт (nil, nil).
func getOne[T any](ctx context.Context, c *core, req Request) (*T, error) {
	resp, err := c.do(ctx, req)
	if err != nil || resp == nil {
		return nil, err
	}
	var v T
	ok, err := decodeJSON(req, resp.Body, &v)
	if err != nil || !ok {
		return nil, err
	}
	return &v, nil
}

// getList исполняет запрос и декодирует массив объектов.
func getList[T any](ctx context.Context, c *core, req Request) ([]T, error) {
	resp, err := c.do(ctx, req)
	if err != nil || resp == nil {
		return nil, err
	}
	var items []T
	if _, err := decodeJSON(req, resp.Body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// getPage проверяет границы страницы, добавляет page/per_page и декодирует
// страницу вместе с заголовками пагинации.
func getPage[T any](ctx context.Context, c *core, req Request, opt ListOptions) (*PagedResult[T], error) {
	if err := c.bounds.Validate(opt); err != nil {
		return nil, err
	}
	req = req.Paginate(opt)
	resp, err := c.do(ctx, req)
	if err != nil || resp == nil {
		return nil, err
	}
	var items []T
	if _, err := decodeJSON(req, resp.Body, &items); err != nil {
		return nil, err
	}
	return newPagedResult(items, resp.Header, opt), nil
}

// getBytes исполняет запрос и возвращает тело ответа как есть
// (артефакты, blob, архивы).
func getBytes(ctx context.Context, c *core, req Request) ([]byte, error) {
	resp, err := c.do(ctx, req)
	if err != nil || resp == nil || len(resp.Body) == 0 {
		return nil, err
	}
	return resp.Body, nil
}

// getText исполняет запрос и возвращает тело ответа как текст,
// перекодированный из charset ответа в UTF-8.
func getText(ctx context.Context, c *core, req Request) (string, error) {
	resp, err := c.do(ctx, req)
	if err != nil || resp == nil {
		return "", err
	}
	return decodeText(resp.Body, resp.Header.Get("Content-Type"))
}

// decodeText перекодирует тело в UTF-8 согласно параметру charset Content-Type.
// Без charset или при UTF-8 тело возвращается без изменений.
func decodeText(body []byte, contentType string) (string, error) {
	if len(body) == 0 {
		return "", nil
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return string(body), nil
	}
	charset := params["charset"]
	if charset == "" {
		return string(body), nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return string(body), nil
	}
	if name, _ := htmlindex.Name(enc); name == "utf-8" {
		return string(body), nil
	}
	decoded, err := io.ReadAll(enc.NewDecoder().Reader(bytes.NewReader(body)))
	if err != nil {
		return "", fmt.Errorf("перекодирование из %s: %w", charset, err)
	}
	return string(decoded), nil
}

// send исполняет запрос, тело ответа которого не нужно.
// Статус вне 2xx не считается ошибкой; его можно узнать через Client.Do.
func send(ctx context.Context, c *core, req Request) error {
	_, err := c.do(ctx, req)
	return err
}
