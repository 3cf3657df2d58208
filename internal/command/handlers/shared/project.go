// Package shared содержит общие функции обработчиков команд.
package shared

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/Kargones/glclient/internal/command"
	"github.com/Kargones/glclient/internal/pkg/apperrors"
	"github.com/Kargones/glclient/pkg/gitlab"
)

// ProjectFlag регистрирует флаг --project: числовой ID или путь "group/name".
func ProjectFlag(fs *pflag.FlagSet) *string {
	return fs.String("project", "", "ID проекта или путь namespace/project")
}

// ResolveProject возвращает ID проекта. Путь разрешается запросом к серверу.
func ResolveProject(ctx context.Context, client *gitlab.Client, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0, apperrors.NewAppError(apperrors.ErrCommandArgs, "не задан --project", nil)
	}
	if id, err := strconv.Atoi(ref); err == nil {
		if id <= 0 {
			return 0, apperrors.NewAppError(apperrors.ErrCommandArgs,
				fmt.Sprintf("некорректный ID проекта %d", id), nil)
		}
		return id, nil
	}
	project, err := client.Projects.FindByPath(ctx, ref)
	if err != nil {
		return 0, err
	}
	if project == nil {
		return 0, apperrors.NewAppError(apperrors.ErrGitLabNotFound,
			fmt.Sprintf("проект %s не найден", ref), command.ErrNoData)
	}
	return project.ID, nil
}

// SplitList разбирает список через запятую, отбрасывая пустые элементы.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// OptionalString возвращает указатель на значение флага, если флаг задан.
func OptionalString(fs *pflag.FlagSet, name string) *string {
	f := fs.Lookup(name)
	if f == nil || !f.Changed {
		return nil
	}
	v := f.Value.String()
	return &v
}

// OptionalBool возвращает указатель на значение булева флага, если флаг задан.
func OptionalBool(fs *pflag.FlagSet, name string) *bool {
	if !fs.Changed(name) {
		return nil
	}
	v, err := fs.GetBool(name)
	if err != nil {
		return nil
	}
	return &v
}

// OptionalInt возвращает указатель на значение числового флага, если флаг задан.
func OptionalInt(fs *pflag.FlagSet, name string) *int {
	if !fs.Changed(name) {
		return nil
	}
	v, err := fs.GetInt(name)
	if err != nil {
		return nil
	}
	return &v
}

// ArgsError оборачивает ошибку разбора значения флага.
func ArgsError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.NewAppError(apperrors.ErrCommandArgs, err.Error(), err)
}
