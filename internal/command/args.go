package command

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Kargones/glclient/internal/pkg/apperrors"
	"github.com/Kargones/glclient/internal/pkg/output"
	"github.com/Kargones/glclient/pkg/gitlab"
)

// NewCommand создаёт cobra.Command для разбора флагов команды реестра.
// Позиционные аргументы не допускаются, вывод usage и ошибок подавлен:
// ошибки возвращаются из Parse и попадают в Result.
func NewCommand(name, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd
}

// Parse разбирает аргументы и проверяет, что заданы обязательные флаги.
func Parse(cmd *cobra.Command, args []string, required ...string) error {
	for _, name := range required {
		if err := cmd.MarkFlagRequired(name); err != nil {
			return argsError(cmd, err)
		}
	}
	if err := cmd.ParseFlags(args); err != nil {
		return argsError(cmd, err)
	}
	if err := cmd.ValidateArgs(cmd.Flags().Args()); err != nil {
		return argsError(cmd, err)
	}
	if err := cmd.ValidateRequiredFlags(); err != nil {
		return argsError(cmd, err)
	}
	return nil
}

func argsError(cmd *cobra.Command, err error) error {
	return apperrors.NewAppError(apperrors.ErrCommandArgs, fmt.Sprintf("%s: %v", cmd.Name(), err), err)
}

// PageFlags регистрирует флаги --page и --per-page.
func PageFlags(fs *pflag.FlagSet) *gitlab.ListOptions {
	opt := gitlab.DefaultListOptions()
	fs.IntVar(&opt.Page, "page", opt.Page, "номер страницы")
	fs.IntVar(&opt.PerPage, "per-page", opt.PerPage, "размер страницы")
	return &opt
}

// PageResult строит успешный Result из страницы списка.
// Пустой ответ сервера выводится как пустая страница.
func PageResult[T any](name string, page *gitlab.PagedResult[T]) *output.Result {
	if page == nil {
		page = &gitlab.PagedResult[T]{}
	}
	items := page.Items
	if items == nil {
		items = []T{}
	}
	result := output.NewSuccess(name, items)
	result.Page = &output.PageInfo{
		Page:       page.Page,
		PerPage:    page.PerPage,
		Total:      page.Total,
		TotalPages: page.TotalPages,
		NextPage:   page.NextPage,
	}
	return result
}
