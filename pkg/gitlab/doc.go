// Package gitlab предоставляет типизированный клиент для REST API GitLab.
//
// Каждое семейство ресурсов (ветки, коммиты, задачи, merge requests, пользователи
// и т.д.) представлено отдельной структурой *API, доступной через поля Client.
// Методы ресурсов не содержат состояния: они проверяют обязательные аргументы,
// строят неизменяемое описание запроса (Request) и передают его в Executor.
//
// # Описание запроса
//
// Request: значение, а не изменяемый объект. Каждый метод-построитель
// возвращает копию с добавленным сегментом или параметром:
//
//	req := gitlab.NewRequest(http.MethodPost, "projects/{projectId}/repository/branches").
//	    SegmentInt("projectId", 5).
//	    Param("branch_name", "feature-x").
//	    Param("ref", "main")
//
// Благодаря этому запросы сравниваются как обычные данные, что упрощает
// тестирование через gitlabtest.Recorder.
//
// # Исполнение
//
// Executor отвечает за транспорт. HTTPTransport использует net/http,
// middleware добавляют аутентификацию (заголовок PRIVATE-TOKEN), логирование,
// метрики и трассировку.
//
// # Пагинация
//
// Методы, возвращающие страницы, принимают ListOptions и возвращают PagedResult,
// в котором метаданные страницы прочитаны из заголовков X-Page, X-Total и т.д.
// Номер и размер страницы проверяются до отправки запроса.
//
// # Ошибки и пустые результаты
//
// ValidationError возвращается, если обязательный аргумент пуст, значение
// перечисления неизвестно или страница вне допустимых границ. Запрос при этом
// не отправляется.
//
// Ответ со статусом вне диапазона 2xx ошибкой не считается: метод ресурса
// возвращает пустой результат (nil, пустую строку) и nil. Статус и текст ответа
// доступны через Client.Do и Response.ErrorMessage, а middleware видит такой
// ответ целиком.
//
// Ошибки транспорта (net/http) возвращаются без обёртки.
package gitlab
