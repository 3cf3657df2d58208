package gitlabtest

import (
	"time"

	"github.com/Kargones/glclient/pkg/gitlab"
)

var fixedTime = time.Date(2016, time.October, 18, 9, 30, 0, 0, time.UTC)

// UserBasicData возвращает краткое представление тестового пользователя.
func UserBasicData() *gitlab.UserBasic {
	return &gitlab.UserBasic{
		ID:        1,
		Username:  "root",
		Name:      "Administrator",
		State:     "active",
		AvatarURL: "https://gitlab.example.com/uploads/user/avatar/1/avatar.png",
		WebURL:    "https://gitlab.example.com/root",
	}
}

// UserData возвращает тестового пользователя.
func UserData() *gitlab.User {
	return &gitlab.User{
		ID:               1,
		Username:         "root",
		Email:            "admin@example.com",
		Name:             "Administrator",
		State:            "active",
		WebURL:           "https://gitlab.example.com/root",
		ProjectsLimit:    100,
		IsAdmin:          true,
		CanCreateGroup:   true,
		CanCreateProject: true,
		CreatedAt:        gitlab.Time(fixedTime),
	}
}

// CommitData возвращает тестовый коммит.
func CommitData() *gitlab.Commit {
	return &gitlab.Commit{
		ID:             "7b5c3cc8be40ee161ae89a06bba6229da1032a0c",
		ShortID:        "7b5c3cc8",
		Title:          "add projects API",
		Message:        "add projects API\n",
		AuthorName:     "John Smith",
		AuthorEmail:    "john@example.com",
		AuthoredDate:   gitlab.Time(fixedTime),
		CommitterName:  "John Smith",
		CommitterEmail: "john@example.com",
		CommittedDate:  gitlab.Time(fixedTime),
		ParentIDs:      []string{"4ad91d3c1144c406e50c7b33bae684bd6837faf8"},
	}
}

// BranchData возвращает список тестовых веток.
func BranchData() []gitlab.Branch {
	return []gitlab.Branch{
		{Name: "main", Commit: CommitData(), Protected: true},
		{Name: "feature-x", Commit: CommitData()},
	}
}

// ProjectData возвращает тестовый проект.
func ProjectData() *gitlab.Project {
	return &gitlab.Project{
		ID:                   5,
		Name:                 "glclient",
		NameWithNamespace:    "tools / glclient",
		Path:                 "glclient",
		PathWithNamespace:    "tools/glclient",
		Description:          "Клиент GitLab API",
		DefaultBranch:        "main",
		VisibilityLevel:      10,
		SSHURLToRepo:         "git@gitlab.example.com:tools/glclient.git",
		HTTPURLToRepo:        "https://gitlab.example.com/tools/glclient.git",
		WebURL:               "https://gitlab.example.com/tools/glclient",
		Owner:                UserBasicData(),
		Namespace:            &gitlab.Namespace{ID: 3, Name: "tools", Path: "tools", Kind: "group"},
		IssuesEnabled:        true,
		MergeRequestsEnabled: true,
		BuildsEnabled:        true,
		CreatorID:            1,
		OpenIssuesCount:      2,
		CreatedAt:            gitlab.Time(fixedTime),
		LastActivityAt:       gitlab.Time(fixedTime),
	}
}

// IssueData возвращает тестовую задачу.
func IssueData() *gitlab.Issue {
	return &gitlab.Issue{
		ID:          41,
		IID:         7,
		ProjectID:   5,
		Title:       "Ошибка разбора заголовков пагинации",
		Description: "X-Total отсутствует на больших выборках",
		State:       "opened",
		Labels:      []string{"bug"},
		Author:      UserBasicData(),
		WebURL:      "https://gitlab.example.com/tools/glclient/issues/7",
		CreatedAt:   gitlab.Time(fixedTime),
		UpdatedAt:   gitlab.Time(fixedTime),
	}
}

// MergeRequestData возвращает тестовый merge request.
func MergeRequestData() *gitlab.MergeRequest {
	return &gitlab.MergeRequest{
		ID:              88,
		IID:             12,
		ProjectID:       5,
		Title:           "Добавить вход по email",
		State:           "opened",
		SourceBranch:    "feature-x",
		TargetBranch:    "main",
		SourceProjectID: 5,
		TargetProjectID: 5,
		Author:          UserBasicData(),
		MergeStatus:     "can_be_merged",
		SHA:             CommitData().ID,
		WebURL:          "https://gitlab.example.com/tools/glclient/merge_requests/12",
		CreatedAt:       gitlab.Time(fixedTime),
		UpdatedAt:       gitlab.Time(fixedTime),
	}
}

// PipelineData возвращает список тестовых пайплайнов.
func PipelineData() []gitlab.Pipeline {
	return []gitlab.Pipeline{
		{ID: 101, SHA: CommitData().ID, Ref: "main", Status: "success", User: UserBasicData(), Duration: 84, CreatedAt: gitlab.Time(fixedTime)},
		{ID: 102, SHA: CommitData().ID, Ref: "feature-x", Status: "running", User: UserBasicData(), CreatedAt: gitlab.Time(fixedTime)},
	}
}
