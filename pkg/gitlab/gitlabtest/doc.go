// Package gitlabtest предоставляет тестовые утилиты для пакета gitlab.
//
// # Recorder
//
// Recorder реализует gitlab.Executor: запоминает каждый запрос и отвечает
// заранее заданными ответами, не обращаясь к сети. Ответы настраиваются
// по ключу "METHOD шаблон" либо функциональным полем RespondFunc.
//
//	client, rec := gitlabtest.NewClient(t)
//	rec.OnJSON(http.MethodGet, "projects/{projectId}", http.StatusOK, gitlabtest.ProjectData())
//	project, err := client.Projects.Find(ctx, 5)
//	req := rec.Last()
//
// # Тестовые данные
//
// Функции *Data() возвращают реалистичные объекты GitLab:
//   - ProjectData(): проект
//   - BranchData(): список веток
//   - UserData(): пользователь
//   - IssueData(): задача
//   - MergeRequestData(): merge request
//   - PipelineData(): список пайплайнов
package gitlabtest
