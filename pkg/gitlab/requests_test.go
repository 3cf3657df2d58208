package gitlab_test

import (
	"context"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kargones/glclient/pkg/gitlab"
)

// errOf отбрасывает результат вызова и оставляет ошибку.
func errOf[T any](_ T, err error) error { return err }

func TestResources_RequestShapeLookups(t *testing.T) {
	runRequestCases(t, lookupCases())
}

// lookupCases покрывает чтение, удаление и действия над объектами,
// а также списки без фильтров.
func lookupCases() []requestCase {
	page := gitlab.DefaultListOptions()
	pid := map[string]string{"projectId": "5"}
	paged := map[string]string{"page": "1", "per_page": "20"}

	return []requestCase{
		// Branches
		{
			name: "Branches.List",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Branches.List(ctx, 5)) },
			want: expectedCall{method: http.MethodGet, resource: "projects/{projectId}/repository/branches", segments: pid},
		},
		{
			name: "Branches.Find",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Branches.Find(ctx, 5, "feature/x"))
			},
			want: expectedCall{
				method: http.MethodGet, resource: "projects/{projectId}/repository/branches/{branchName}",
				segments: map[string]string{"projectId": "5", "branchName": "feature/x"},
			},
		},
		{
			name: "Branches.Delete",
			call: func(ctx context.Context, c *gitlab.Client) error { return c.Branches.Delete(ctx, 5, "old") },
			want: expectedCall{
				method: http.MethodDelete, resource: "projects/{projectId}/repository/branches/{branchName}",
				segments: map[string]string{"branchName": "old"},
			},
		},
		// Builds
		{
			name: "Builds.ListForCommit без фильтра",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Builds.ListForCommit(ctx, 5, "abc", nil))
			},
			want: expectedCall{
				method: http.MethodGet, resource: "projects/{projectId}/repository/commits/{sha}/builds",
				segments: map[string]string{"projectId": "5", "sha": "abc"}, absent: []string{"scope"},
			},
		},
		{
			name: "Builds.ListForCommit со статусом",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Builds.ListForCommit(ctx, 5, "abc", []gitlab.BuildScope{gitlab.BuildScopeManual}))
			},
			want: expectedCall{
				method: http.MethodGet, resource: "projects/{projectId}/repository/commits/{sha}/builds",
				params: map[string]string{"scope": "manual"},
			},
		},
		buildCase("Builds.Find", http.MethodGet, "", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Builds.Find(ctx, 5, 9))
		}),
		buildCase("Builds.Artifacts", http.MethodGet, "/artifacts", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Builds.Artifacts(ctx, 5, 9))
		}),
		buildCase("Builds.Trace", http.MethodGet, "/trace", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Builds.Trace(ctx, 5, 9))
		}),
		buildCase("Builds.Cancel", http.MethodPost, "/cancel", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Builds.Cancel(ctx, 5, 9))
		}),
		buildCase("Builds.Retry", http.MethodPost, "/retry", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Builds.Retry(ctx, 5, 9))
		}),
		buildCase("Builds.Erase", http.MethodPost, "/erase", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Builds.Erase(ctx, 5, 9))
		}),
		buildCase("Builds.Play", http.MethodPost, "/play", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Builds.Play(ctx, 5, 9))
		}),
		// Commits
		commitCase("Commits.Find", "", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Commits.Find(ctx, 5, "abc"))
		}),
		commitCase("Commits.Diff", "/diff", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Commits.Diff(ctx, 5, "abc"))
		}),
		commitCase("Commits.Comments", "/comments", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Commits.Comments(ctx, 5, "abc"))
		}),
		{
			name: "Commits.Statuses без фильтров",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Commits.Statuses(ctx, 5, "abc", gitlab.CommitStatusListOptions{}))
			},
			want: expectedCall{
				method: http.MethodGet, resource: "projects/{projectId}/repository/commits/{sha}/statuses",
				segments: map[string]string{"sha": "abc"}, absent: []string{"ref", "stage", "name", "all"},
			},
		},
		{
			name: "Commits.Statuses с фильтрами",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Commits.Statuses(ctx, 5, "abc", gitlab.CommitStatusListOptions{
					Stage: gitlab.String("test"), All: gitlab.Bool(true),
				}))
			},
			want: expectedCall{
				method: http.MethodGet, resource: "projects/{projectId}/repository/commits/{sha}/statuses",
				params: map[string]string{"stage": "test", "all": "true"}, absent: []string{"ref", "name"},
			},
		},
		// DeployKeys
		{
			name: "DeployKeys.ListAll",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.DeployKeys.ListAll(ctx)) },
			want: expectedCall{method: http.MethodGet, resource: "deploy_keys"},
		},
		{
			name: "DeployKeys.List",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.DeployKeys.List(ctx, 5)) },
			want: expectedCall{method: http.MethodGet, resource: "projects/{projectId}/deploy_keys", segments: pid},
		},
		{
			name: "DeployKeys.Find",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.DeployKeys.Find(ctx, 5, 3)) },
			want: expectedCall{
				method: http.MethodGet, resource: "projects/{projectId}/deploy_keys/{keyId}",
				segments: map[string]string{"projectId": "5", "keyId": "3"},
			},
		},
		{
			name: "DeployKeys.Delete",
			call: func(ctx context.Context, c *gitlab.Client) error { return c.DeployKeys.Delete(ctx, 5, 3) },
			want: expectedCall{
				method: http.MethodDelete, resource: "projects/{projectId}/deploy_keys/{keyId}",
				segments: map[string]string{"keyId": "3"},
			},
		},
		// Environments
		{
			name: "Environments.List",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Environments.List(ctx, 5, page))
			},
			want: expectedCall{method: http.MethodGet, resource: "projects/{projectId}/environments", segments: pid, params: paged},
		},
		{
			name: "Environments.Update только адрес",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Environments.Update(ctx, 5, 2, gitlab.EnvironmentOptions{ExternalURL: gitlab.String("https://review.example.com")}))
			},
			want: expectedCall{
				method: http.MethodPut, resource: "projects/{projectId}/environments/{environmentId}",
				segments: map[string]string{"environmentId": "2"},
				params:   map[string]string{"external_url": "https://review.example.com"},
				absent:   []string{"name"},
			},
		},
		{
			name: "Environments.Delete",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Environments.Delete(ctx, 5, 2)) },
			want: expectedCall{
				method: http.MethodDelete, resource: "projects/{projectId}/environments/{environmentId}",
				segments: map[string]string{"environmentId": "2"},
			},
		},
		{
			name: "Deployments.List",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Deployments.List(ctx, 5, page)) },
			want: expectedCall{method: http.MethodGet, resource: "projects/{projectId}/deployments", segments: pid, params: paged},
		},
		// Files
		{
			name: "Files.Create без автора",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Files.Create(ctx, 5, gitlab.FileCommit{
					FilePath: "docs/README.md", BranchName: "main", Content: "# docs", CommitMessage: "add docs",
				}))
			},
			want: expectedCall{
				method: http.MethodPost, resource: "projects/{projectId}/repository/files", segments: pid,
				params: map[string]string{"file_path": "docs/README.md", "branch_name": "main", "content": "# docs", "commit_message": "add docs"},
				absent: []string{"encoding", "author_email", "author_name"},
			},
		},
		// Groups
		{
			name: "Groups.List без фильтров",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Groups.List(ctx, gitlab.GroupListOptions{}, page))
			},
			want: expectedCall{
				method: http.MethodGet, resource: "groups", params: paged,
				absent: []string{"search", "order_by", "sort", "all_available"},
			},
		},
		{
			name: "Groups.Owned",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Groups.Owned(ctx, page)) },
			want: expectedCall{method: http.MethodGet, resource: "groups/owned", params: paged},
		},
		{
			name: "Groups.Find",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Groups.Find(ctx, 3)) },
			want: expectedCall{method: http.MethodGet, resource: "groups/{groupId}", segments: map[string]string{"groupId": "3"}},
		},
		{
			name: "Groups.Create",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Groups.Create(ctx, "Platform", "platform", gitlab.GroupOptions{Visibility: gitlab.VisibilityInternal}))
			},
			want: expectedCall{
				method: http.MethodPost, resource: "groups",
				params: map[string]string{"name": "Platform", "path": "platform", "visibility_level": "10"},
				absent: []string{"description", "lfs_enabled", "request_access_enabled"},
			},
		},
		{
			name: "Groups.Update",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Groups.Update(ctx, 3, gitlab.GroupUpdate{Name: gitlab.String("Core")}))
			},
			want: expectedCall{
				method: http.MethodPut, resource: "groups/{groupId}", segments: map[string]string{"groupId": "3"},
				params: map[string]string{"name": "Core"}, absent: []string{"path", "visibility_level"},
			},
		},
		{
			name: "Groups.Delete",
			call: func(ctx context.Context, c *gitlab.Client) error { return c.Groups.Delete(ctx, 3) },
			want: expectedCall{method: http.MethodDelete, resource: "groups/{groupId}", segments: map[string]string{"groupId": "3"}},
		},
		{
			name: "Groups.Projects",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Groups.Projects(ctx, 3, gitlab.ProjectListOptions{Archived: gitlab.Bool(false)}, page))
			},
			want: expectedCall{
				method: http.MethodGet, resource: "groups/{groupId}/projects", segments: map[string]string{"groupId": "3"},
				params: map[string]string{"archived": "false"}, absent: []string{"visibility", "search"},
			},
		},
		// Hooks
		{
			name: "ProjectHooks.List",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.ProjectHooks.List(ctx, 5)) },
			want: expectedCall{method: http.MethodGet, resource: "projects/{projectId}/hooks", segments: pid},
		},
		{
			name: "ProjectHooks.Find",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.ProjectHooks.Find(ctx, 5, 4)) },
			want: expectedCall{
				method: http.MethodGet, resource: "projects/{projectId}/hooks/{hookId}",
				segments: map[string]string{"projectId": "5", "hookId": "4"},
			},
		},
		{
			name: "ProjectHooks.Update",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.ProjectHooks.Update(ctx, 5, 4, "https://ci.example.com/hook", gitlab.ProjectHookOptions{
					PushEvents: gitlab.Bool(false),
				}))
			},
			want: expectedCall{
				method: http.MethodPut, resource: "projects/{projectId}/hooks/{hookId}",
				params: map[string]string{"url": "https://ci.example.com/hook", "push_events": "false"},
				absent: []string{"issues_events", "token"},
			},
		},
		{
			name: "ProjectHooks.Delete",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.ProjectHooks.Delete(ctx, 5, 4)) },
			want: expectedCall{method: http.MethodDelete, resource: "projects/{projectId}/hooks/{hookId}"},
		},
		{
			name: "SystemHooks.List",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.SystemHooks.List(ctx)) },
			want: expectedCall{method: http.MethodGet, resource: "hooks"},
		},
		{
			name: "SystemHooks.Create",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.SystemHooks.Create(ctx, "https://audit.example.com"))
			},
			want: expectedCall{method: http.MethodPost, resource: "hooks", params: map[string]string{"url": "https://audit.example.com"}},
		},
		{
			name: "SystemHooks.Delete",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.SystemHooks.Delete(ctx, 4)) },
			want: expectedCall{method: http.MethodDelete, resource: "hooks/{hookId}", segments: map[string]string{"hookId": "4"}},
		},
		// Issues
		{
			name: "Issues.ListAll без фильтров",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Issues.ListAll(ctx, gitlab.IssueListOptions{}, page))
			},
			want: expectedCall{
				method: http.MethodGet, resource: "issues", params: paged,
				absent: []string{"state", "labels", "milestone", "order_by", "sort"},
			},
		},
		issueCase("Issues.Find", http.MethodGet, "", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Issues.Find(ctx, 5, 11))
		}),
		{
			name: "Issues.Create без опций",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Issues.Create(ctx, 5, "Падает сборка", gitlab.IssueOptions{}))
			},
			want: expectedCall{
				method: http.MethodPost, resource: "projects/{projectId}/issues", segments: pid,
				params: map[string]string{"title": "Падает сборка"},
				absent: []string{"description", "confidential", "assignee_id", "milestone_id", "labels", "due_date"},
			},
		},
		issueCase("Issues.Delete", http.MethodDelete, "", func(ctx context.Context, c *gitlab.Client) error {
			return c.Issues.Delete(ctx, 5, 11)
		}),
		issueCase("Issues.Subscribe", http.MethodPost, "/subscription", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Issues.Subscribe(ctx, 5, 11))
		}),
		// Labels
		{
			name: "Labels.List",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Labels.List(ctx, 5)) },
			want: expectedCall{method: http.MethodGet, resource: "projects/{projectId}/labels", segments: pid},
		},
		{
			name: "Labels.Create",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Labels.Create(ctx, 5, "bug", "#d9534f", gitlab.LabelOptions{}))
			},
			want: expectedCall{
				method: http.MethodPost, resource: "projects/{projectId}/labels",
				params: map[string]string{"name": "bug", "color": "#d9534f"}, absent: []string{"description", "priority"},
			},
		},
		{
			name: "Labels.Update только цвет",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Labels.Update(ctx, 5, "bug", gitlab.LabelUpdate{Color: gitlab.String("#000000")}))
			},
			want: expectedCall{
				method: http.MethodPut, resource: "projects/{projectId}/labels",
				params: map[string]string{"name": "bug", "color": "#000000"}, absent: []string{"new_name"},
			},
		},
		{
			name: "Labels.Unsubscribe",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Labels.Unsubscribe(ctx, 5, "bug"))
			},
			want: expectedCall{
				method: http.MethodDelete, resource: "projects/{projectId}/labels/{label}/subscription",
				segments: map[string]string{"label": "bug"},
			},
		},
		// Members
		{
			name: "GroupMembers.List",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.GroupMembers.List(ctx, 3)) },
			want: expectedCall{method: http.MethodGet, resource: "groups/{groupId}/members", segments: map[string]string{"groupId": "3"}},
		},
		{
			name: "GroupMembers.Update без срока",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.GroupMembers.Update(ctx, 3, 7, gitlab.AccessMaster, nil))
			},
			want: expectedCall{
				method: http.MethodPut, resource: "groups/{groupId}/members/{userId}",
				segments: map[string]string{"groupId": "3", "userId": "7"},
				params:   map[string]string{"access_level": "40"},
				absent:   []string{"expires_at"},
			},
		},
		{
			name: "GroupMembers.Remove",
			call: func(ctx context.Context, c *gitlab.Client) error { return c.GroupMembers.Remove(ctx, 3, 7) },
			want: expectedCall{method: http.MethodDelete, resource: "groups/{groupId}/members/{userId}"},
		},
		{
			name: "ProjectMembers.List без запроса",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.ProjectMembers.List(ctx, 5, nil, page))
			},
			want: expectedCall{
				method: http.MethodGet, resource: "projects/{projectId}/members", segments: pid,
				params: paged, absent: []string{"query"},
			},
		},
		{
			name: "ProjectMembers.List с запросом",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.ProjectMembers.List(ctx, 5, gitlab.String("ivan"), page))
			},
			want: expectedCall{method: http.MethodGet, resource: "projects/{projectId}/members", params: map[string]string{"query": "ivan"}},
		},
		{
			name: "ProjectMembers.Find",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.ProjectMembers.Find(ctx, 5, 7)) },
			want: expectedCall{
				method: http.MethodGet, resource: "projects/{projectId}/members/{userId}",
				segments: map[string]string{"projectId": "5", "userId": "7"},
			},
		},
		{
			name: "ProjectMembers.Add",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.ProjectMembers.Add(ctx, 5, 7, gitlab.AccessReporter, nil))
			},
			want: expectedCall{
				method: http.MethodPost, resource: "projects/{projectId}/members",
				params: map[string]string{"user_id": "7", "access_level": "20"}, absent: []string{"expires_at"},
			},
		},
		{
			name: "ProjectMembers.Remove",
			call: func(ctx context.Context, c *gitlab.Client) error { return c.ProjectMembers.Remove(ctx, 5, 7) },
			want: expectedCall{method: http.MethodDelete, resource: "projects/{projectId}/members/{userId}"},
		},
		// MergeRequests
		{
			name: "MergeRequests.List без фильтров",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.MergeRequests.List(ctx, 5, gitlab.MergeRequestListOptions{}, page))
			},
			want: expectedCall{
				method: http.MethodGet, resource: "projects/{projectId}/merge_requests", segments: pid,
				params: paged, absent: []string{"state", "order_by", "sort", "iid[]"},
			},
		},
		{
			name: "MergeRequests.List с фильтрами",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.MergeRequests.List(ctx, 5, gitlab.MergeRequestListOptions{
					State: gitlab.MergeRequestStateMerged, Sort: gitlab.SortAsc, IIDs: []int{3, 4},
				}, page))
			},
			want: expectedCall{
				method: http.MethodGet, resource: "projects/{projectId}/merge_requests",
				params: map[string]string{"state": "merged", "sort": "asc", "iid[]": "3"}, absent: []string{"order_by"},
			},
		},
		mergeRequestCase("MergeRequests.Find", http.MethodGet, "", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.MergeRequests.Find(ctx, 5, 8))
		}),
		mergeRequestCase("MergeRequests.Commits", http.MethodGet, "/commits", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.MergeRequests.Commits(ctx, 5, 8))
		}),
		mergeRequestCase("MergeRequests.Changes", http.MethodGet, "/changes", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.MergeRequests.Changes(ctx, 5, 8))
		}),
		{
			name: "MergeRequests.Update закрытие",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.MergeRequests.Update(ctx, 5, 8, gitlab.MergeRequestUpdate{StateEvent: gitlab.StateEventClose}))
			},
			want: expectedCall{
				method: http.MethodPut, resource: "projects/{projectId}/merge_requests/{mergeRequestId}",
				segments: map[string]string{"mergeRequestId": "8"}, params: map[string]string{"state_event": "close"},
				absent: []string{"target_branch", "title", "description", "labels"},
			},
		},
		mergeRequestCase("MergeRequests.Delete", http.MethodDelete, "", func(ctx context.Context, c *gitlab.Client) error {
			return c.MergeRequests.Delete(ctx, 5, 8)
		}),
		mergeRequestCase("MergeRequests.Subscribe", http.MethodPost, "/subscription", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.MergeRequests.Subscribe(ctx, 5, 8))
		}),
		mergeRequestCase("MergeRequests.Unsubscribe", http.MethodDelete, "/subscription", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.MergeRequests.Unsubscribe(ctx, 5, 8))
		}),
		// Milestones
		milestoneCase("Milestones.Find", http.MethodGet, "", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Milestones.Find(ctx, 5, 6))
		}),
		{
			name: "Milestones.Create без опций",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Milestones.Create(ctx, 5, "v2.0", gitlab.MilestoneOptions{}))
			},
			want: expectedCall{
				method: http.MethodPost, resource: "projects/{projectId}/milestones", segments: pid,
				params: map[string]string{"title": "v2.0"}, absent: []string{"description", "due_date"},
			},
		},
		milestoneCase("Milestones.Issues", http.MethodGet, "/issues", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Milestones.Issues(ctx, 5, 6))
		}),
		milestoneCase("Milestones.MergeRequests", http.MethodGet, "/merge_requests", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Milestones.MergeRequests(ctx, 5, 6))
		}),
		// Notes
		{
			name: "Notes.List к merge request",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Notes.List(ctx, 5, gitlab.NoteableMergeRequest, 8, page))
			},
			want: expectedCall{
				method: http.MethodGet, resource: "projects/{projectId}/merge_requests/{noteableId}/notes",
				segments: map[string]string{"projectId": "5", "noteableId": "8"}, params: paged,
			},
		},
		{
			name: "Notes.Find к сниппету",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Notes.Find(ctx, 5, gitlab.NoteableSnippet, 2, 40))
			},
			want: expectedCall{
				method: http.MethodGet, resource: "projects/{projectId}/snippets/{noteableId}/notes/{noteId}",
				segments: map[string]string{"noteableId": "2", "noteId": "40"},
			},
		},
		{
			name: "Notes.Update",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Notes.Update(ctx, 5, gitlab.NoteableIssue, 11, 40, "Исправлено"))
			},
			want: expectedCall{
				method: http.MethodPut, resource: "projects/{projectId}/issues/{noteableId}/notes/{noteId}",
				segments: map[string]string{"noteableId": "11", "noteId": "40"}, params: map[string]string{"body": "Исправлено"},
			},
		},
		// Pipelines
		pipelineCase("Pipelines.Find", http.MethodGet, "", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Pipelines.Find(ctx, 5, 12))
		}),
		pipelineCase("Pipelines.Retry", http.MethodPost, "/retry", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Pipelines.Retry(ctx, 5, 12))
		}),
		// Projects
		{
			name: "Projects.Owned без фильтров",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Projects.Owned(ctx, gitlab.ProjectListOptions{}, page))
			},
			want: expectedCall{
				method: http.MethodGet, resource: "projects/owned", params: paged,
				absent: []string{"archived", "visibility", "order_by", "sort", "search", "simple"},
			},
		},
		{
			name: "Projects.Starred",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Projects.Starred(ctx, gitlab.ProjectListOptions{Simple: gitlab.Bool(true)}, page))
			},
			want: expectedCall{
				method: http.MethodGet, resource: "projects/starred",
				params: map[string]string{"simple": "true"}, absent: []string{"archived", "search"},
			},
		},
		{
			name: "Projects.All с фильтрами",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Projects.All(ctx, gitlab.ProjectListOptions{
					Visibility: gitlab.VisibilityPublic, OrderBy: gitlab.ProjectOrderByLastActivityAt, Sort: gitlab.SortDesc,
				}, page))
			},
			want: expectedCall{
				method: http.MethodGet, resource: "projects/all",
				params: map[string]string{"visibility": "public", "order_by": "last_activity_at", "sort": "desc"},
				absent: []string{"archived", "search", "simple"},
			},
		},
		projectCase("Projects.Find", http.MethodGet, "", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Projects.Find(ctx, 5))
		}),
		{
			name: "Projects.Events",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Projects.Events(ctx, 5, page)) },
			want: expectedCall{method: http.MethodGet, resource: "projects/{projectId}/events", segments: pid, params: paged},
		},
		{
			name: "Projects.Update",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Projects.Update(ctx, 5, gitlab.ProjectUpdate{Name: gitlab.String("glclient")}))
			},
			want: expectedCall{
				method: http.MethodPut, resource: "projects/{projectId}", segments: pid,
				params: map[string]string{"name": "glclient"}, absent: []string{"path", "description", "visibility_level"},
			},
		},
		projectCase("Projects.Star", http.MethodPost, "/star", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Projects.Star(ctx, 5))
		}),
		projectCase("Projects.Unstar", http.MethodDelete, "/star", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Projects.Unstar(ctx, 5))
		}),
		projectCase("Projects.Archive", http.MethodPost, "/archive", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Projects.Archive(ctx, 5))
		}),
		projectCase("Projects.Unarchive", http.MethodPost, "/unarchive", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Projects.Unarchive(ctx, 5))
		}),
		projectCase("Projects.Delete", http.MethodDelete, "", func(ctx context.Context, c *gitlab.Client) error {
			return c.Projects.Delete(ctx, 5)
		}),
		// Repository
		{
			name: "Repository.RawBlob",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Repository.RawBlob(ctx, 5, "7a3f"))
			},
			want: expectedCall{
				method: http.MethodGet, resource: "projects/{projectId}/repository/raw_blobs/{blobSha}",
				segments: map[string]string{"projectId": "5", "blobSha": "7a3f"},
			},
		},
		{
			name: "Repository.Archive без sha",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Repository.Archive(ctx, 5, nil))
			},
			want: expectedCall{method: http.MethodGet, resource: "projects/{projectId}/repository/archive", absent: []string{"sha"}},
		},
		{
			name: "Repository.Archive с sha",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Repository.Archive(ctx, 5, gitlab.String("v1.0")))
			},
			want: expectedCall{method: http.MethodGet, resource: "projects/{projectId}/repository/archive", params: map[string]string{"sha": "v1.0"}},
		},
		{
			name: "Repository.Contributors",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Repository.Contributors(ctx, 5))
			},
			want: expectedCall{method: http.MethodGet, resource: "projects/{projectId}/repository/contributors", segments: pid},
		},
		// Runners
		{
			name: "Runners.List без scope",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Runners.List(ctx, 0, page)) },
			want: expectedCall{method: http.MethodGet, resource: "runners", params: paged, absent: []string{"scope"}},
		},
		{
			name: "Runners.Find",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Runners.Find(ctx, 15)) },
			want: expectedCall{method: http.MethodGet, resource: "runners/{runnerId}", segments: map[string]string{"runnerId": "15"}},
		},
		{
			name: "Runners.Delete",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Runners.Delete(ctx, 15)) },
			want: expectedCall{method: http.MethodDelete, resource: "runners/{runnerId}", segments: map[string]string{"runnerId": "15"}},
		},
		{
			name: "Runners.ListForProject",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Runners.ListForProject(ctx, 5, gitlab.RunnerScopeShared, page))
			},
			want: expectedCall{
				method: http.MethodGet, resource: "projects/{projectId}/runners", segments: pid,
				params: map[string]string{"scope": "shared", "page": "1"},
			},
		},
		{
			name: "Runners.DisableForProject",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Runners.DisableForProject(ctx, 5, 15))
			},
			want: expectedCall{
				method: http.MethodDelete, resource: "projects/{projectId}/runners/{runnerId}",
				segments: map[string]string{"projectId": "5", "runnerId": "15"},
			},
		},
		// Session, Settings, Sidekiq
		{
			name: "Session.LoginWithEmail",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Session.LoginWithEmail(ctx, "admin@example.com", "password"))
			},
			want: expectedCall{
				method: http.MethodPost, resource: "session",
				params: map[string]string{"email": "admin@example.com", "password": "password"}, absent: []string{"login"},
			},
		},
		{
			name: "Settings.Get",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Settings.Get(ctx)) },
			want: expectedCall{method: http.MethodGet, resource: "application/settings"},
		},
		{
			name: "Sidekiq.QueueMetrics",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Sidekiq.QueueMetrics(ctx)) },
			want: expectedCall{method: http.MethodGet, resource: "sidekiq/queue_metrics"},
		},
		{
			name: "Sidekiq.ProcessMetrics",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Sidekiq.ProcessMetrics(ctx)) },
			want: expectedCall{method: http.MethodGet, resource: "sidekiq/process_metrics"},
		},
		{
			name: "Sidekiq.JobStats",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Sidekiq.JobStats(ctx)) },
			want: expectedCall{method: http.MethodGet, resource: "sidekiq/job_stats"},
		},
		// Snippets
		{
			name: "ProjectSnippets.List",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.ProjectSnippets.List(ctx, 5)) },
			want: expectedCall{method: http.MethodGet, resource: "projects/{projectId}/snippets", segments: pid},
		},
		snippetCase("ProjectSnippets.Find", http.MethodGet, "", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.ProjectSnippets.Find(ctx, 5, 2))
		}),
		{
			name: "ProjectSnippets.Update только код",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.ProjectSnippets.Update(ctx, 5, 2, gitlab.SnippetUpdate{Code: gitlab.String("fmt.Println()")}))
			},
			want: expectedCall{
				method: http.MethodPut, resource: "projects/{projectId}/snippets/{snippetId}",
				params: map[string]string{"code": "fmt.Println()"}, absent: []string{"title", "file_name", "visibility_level"},
			},
		},
		snippetCase("ProjectSnippets.Delete", http.MethodDelete, "", func(ctx context.Context, c *gitlab.Client) error {
			return c.ProjectSnippets.Delete(ctx, 5, 2)
		}),
		snippetCase("ProjectSnippets.Content", http.MethodGet, "/raw", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.ProjectSnippets.Content(ctx, 5, 2))
		}),
		// Tags
		{
			name: "Tags.List",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Tags.List(ctx, 5)) },
			want: expectedCall{method: http.MethodGet, resource: "projects/{projectId}/repository/tags", segments: pid},
		},
		{
			name: "Tags.Find",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Tags.Find(ctx, 5, "v1.0.0")) },
			want: expectedCall{
				method: http.MethodGet, resource: "projects/{projectId}/repository/tags/{tagName}",
				segments: map[string]string{"projectId": "5", "tagName": "v1.0.0"},
			},
		},
		{
			name: "Tags.Delete",
			call: func(ctx context.Context, c *gitlab.Client) error { return c.Tags.Delete(ctx, 5, "v1.0.0") },
			want: expectedCall{method: http.MethodDelete, resource: "projects/{projectId}/repository/tags/{tagName}"},
		},
		{
			name: "Tags.CreateRelease",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Tags.CreateRelease(ctx, 5, "v1.0.0", "Первый релиз"))
			},
			want: expectedCall{
				method: http.MethodPost, resource: "projects/{projectId}/repository/tags/{tagName}/release",
				segments: map[string]string{"tagName": "v1.0.0"}, params: map[string]string{"description": "Первый релиз"},
			},
		},
		// Version, Templates, Todos
		{
			name: "Version.Get",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Version.Get(ctx)) },
			want: expectedCall{method: http.MethodGet, resource: "version"},
		},
		{
			name: "Templates.Gitignores",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Templates.Gitignores(ctx)) },
			want: expectedCall{method: http.MethodGet, resource: "gitignores"},
		},
		{
			name: "Templates.Gitignore",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Templates.Gitignore(ctx, "Go")) },
			want: expectedCall{method: http.MethodGet, resource: "gitignores/{key}", segments: map[string]string{"key": "Go"}},
		},
		{
			name: "Templates.CIYmls",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Templates.CIYmls(ctx)) },
			want: expectedCall{method: http.MethodGet, resource: "gitlab_ci_ymls"},
		},
		{
			name: "Templates.Licenses без фильтра",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Templates.Licenses(ctx, nil)) },
			want: expectedCall{method: http.MethodGet, resource: "licenses", absent: []string{"popular"}},
		},
		{
			name: "Templates.Licenses популярные",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Templates.Licenses(ctx, gitlab.Bool(true)))
			},
			want: expectedCall{method: http.MethodGet, resource: "licenses", params: map[string]string{"popular": "true"}},
		},
		{
			name: "Todos.MarkAsDone",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Todos.MarkAsDone(ctx, 21)) },
			want: expectedCall{method: http.MethodDelete, resource: "todos/{todoId}", segments: map[string]string{"todoId": "21"}},
		},
		// Triggers
		{
			name: "Triggers.List",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Triggers.List(ctx, 5)) },
			want: expectedCall{method: http.MethodGet, resource: "projects/{projectId}/triggers", segments: pid},
		},
		{
			name: "Triggers.Find",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Triggers.Find(ctx, 5, "tok")) },
			want: expectedCall{
				method: http.MethodGet, resource: "projects/{projectId}/triggers/{token}",
				segments: map[string]string{"projectId": "5", "token": "tok"},
			},
		},
		{
			name: "Triggers.Create",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Triggers.Create(ctx, 5)) },
			want: expectedCall{method: http.MethodPost, resource: "projects/{projectId}/triggers", segments: pid},
		},
		{
			name: "Triggers.Delete",
			call: func(ctx context.Context, c *gitlab.Client) error { return c.Triggers.Delete(ctx, 5, "tok") },
			want: expectedCall{
				method: http.MethodDelete, resource: "projects/{projectId}/triggers/{token}",
				segments: map[string]string{"token": "tok"},
			},
		},
		// Users
		{
			name: "Users.List без фильтров",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Users.List(ctx, gitlab.UserListOptions{}, page))
			},
			want: expectedCall{
				method: http.MethodGet, resource: "users", params: paged,
				absent: []string{"search", "username", "active", "blocked", "external"},
			},
		},
		{
			name: "Users.List по имени",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Users.List(ctx, gitlab.UserListOptions{Username: gitlab.String("root"), Blocked: gitlab.Bool(false)}, page))
			},
			want: expectedCall{
				method: http.MethodGet, resource: "users",
				params: map[string]string{"username": "root", "blocked": "false"}, absent: []string{"search", "active", "external"},
			},
		},
		userCase("Users.Find", http.MethodGet, "", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Users.Find(ctx, 7))
		}),
		{
			name: "Users.Current",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Users.Current(ctx)) },
			want: expectedCall{method: http.MethodGet, resource: "user"},
		},
		{
			name: "Users.Update",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Users.Update(ctx, 7, gitlab.UserUpdate{Name: gitlab.String("Иван")}))
			},
			want: expectedCall{
				method: http.MethodPut, resource: "users/{userId}", segments: map[string]string{"userId": "7"},
				params: map[string]string{"name": "Иван"}, absent: []string{"email", "password", "username", "admin"},
			},
		},
		userCase("Users.Delete", http.MethodDelete, "", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Users.Delete(ctx, 7))
		}),
		userCase("Users.Unblock", http.MethodPut, "/unblock", func(ctx context.Context, c *gitlab.Client) error {
			return c.Users.Unblock(ctx, 7)
		}),
		{
			name: "Users.SSHKeys",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Users.SSHKeys(ctx)) },
			want: expectedCall{method: http.MethodGet, resource: "user/keys"},
		},
		userCase("Users.SSHKeysForUser", http.MethodGet, "/keys", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Users.SSHKeysForUser(ctx, 7))
		}),
		{
			name: "Users.FindSSHKey",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Users.FindSSHKey(ctx, 31)) },
			want: expectedCall{method: http.MethodGet, resource: "user/keys/{keyId}", segments: map[string]string{"keyId": "31"}},
		},
		{
			name: "Users.AddSSHKey",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Users.AddSSHKey(ctx, "laptop", "ssh-ed25519 AAAA"))
			},
			want: expectedCall{
				method: http.MethodPost, resource: "user/keys",
				params: map[string]string{"title": "laptop", "key": "ssh-ed25519 AAAA"},
			},
		},
		{
			name: "Users.AddSSHKeyForUser",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Users.AddSSHKeyForUser(ctx, 7, "ci", "ssh-rsa AAAA"))
			},
			want: expectedCall{
				method: http.MethodPost, resource: "users/{userId}/keys", segments: map[string]string{"userId": "7"},
				params: map[string]string{"title": "ci", "key": "ssh-rsa AAAA"},
			},
		},
		{
			name: "Users.DeleteSSHKey",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Users.DeleteSSHKey(ctx, 31)) },
			want: expectedCall{method: http.MethodDelete, resource: "user/keys/{keyId}", segments: map[string]string{"keyId": "31"}},
		},
		{
			name: "Users.Emails",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Users.Emails(ctx)) },
			want: expectedCall{method: http.MethodGet, resource: "user/emails"},
		},
		userCase("Users.EmailsForUser", http.MethodGet, "/emails", func(ctx context.Context, c *gitlab.Client) error {
			return errOf(c.Users.EmailsForUser(ctx, 7))
		}),
		{
			name: "Users.FindEmail",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Users.FindEmail(ctx, 2)) },
			want: expectedCall{method: http.MethodGet, resource: "user/emails/{emailId}", segments: map[string]string{"emailId": "2"}},
		},
		{
			name: "Users.AddEmailForUser",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Users.AddEmailForUser(ctx, 7, "ivan@example.com"))
			},
			want: expectedCall{
				method: http.MethodPost, resource: "users/{userId}/emails", segments: map[string]string{"userId": "7"},
				params: map[string]string{"email": "ivan@example.com"},
			},
		},
		{
			name: "Users.DeleteEmail",
			call: func(ctx context.Context, c *gitlab.Client) error { return c.Users.DeleteEmail(ctx, 2) },
			want: expectedCall{method: http.MethodDelete, resource: "user/emails/{emailId}", segments: map[string]string{"emailId": "2"}},
		},
		{
			name: "Users.DeleteEmailForUser",
			call: func(ctx context.Context, c *gitlab.Client) error { return c.Users.DeleteEmailForUser(ctx, 7, 2) },
			want: expectedCall{
				method: http.MethodDelete, resource: "users/{userId}/emails/{emailId}",
				segments: map[string]string{"userId": "7", "emailId": "2"},
			},
		},
		// Variables
		{
			name: "Variables.List",
			call: func(ctx context.Context, c *gitlab.Client) error { return errOf(c.Variables.List(ctx, 5)) },
			want: expectedCall{method: http.MethodGet, resource: "projects/{projectId}/variables", segments: pid},
		},
		{
			name: "Variables.Find",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Variables.Find(ctx, 5, "DEPLOY_TOKEN"))
			},
			want: expectedCall{
				method: http.MethodGet, resource: "projects/{projectId}/variables/{key}",
				segments: map[string]string{"projectId": "5", "key": "DEPLOY_TOKEN"},
			},
		},
		{
			name: "Variables.Create",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Variables.Create(ctx, 5, "DEPLOY_TOKEN", "secret"))
			},
			want: expectedCall{
				method: http.MethodPost, resource: "projects/{projectId}/variables", segments: pid,
				params: map[string]string{"key": "DEPLOY_TOKEN", "value": "secret"},
			},
		},
		{
			name: "Variables.Delete",
			call: func(ctx context.Context, c *gitlab.Client) error {
				return errOf(c.Variables.Delete(ctx, 5, "DEPLOY_TOKEN"))
			},
			want: expectedCall{
				method: http.MethodDelete, resource: "projects/{projectId}/variables/{key}",
				segments: map[string]string{"key": "DEPLOY_TOKEN"},
			},
		},
	}
}

// nestedCase строит случай для метода, адресующего вложенный объект проекта.
func nestedCase(name, method, resource string, segments map[string]string, call func(ctx context.Context, c *gitlab.Client) error) requestCase {
	return requestCase{name: name, call: call, want: expectedCall{method: method, resource: resource, segments: segments}}
}

func buildCase(name, method, suffix string, call func(ctx context.Context, c *gitlab.Client) error) requestCase {
	return nestedCase(name, method, "projects/{projectId}/builds/{buildId}"+suffix,
		map[string]string{"projectId": "5", "buildId": "9"}, call)
}

func commitCase(name, suffix string, call func(ctx context.Context, c *gitlab.Client) error) requestCase {
	return nestedCase(name, http.MethodGet, "projects/{projectId}/repository/commits/{sha}"+suffix,
		map[string]string{"projectId": "5", "sha": "abc"}, call)
}

func issueCase(name, method, suffix string, call func(ctx context.Context, c *gitlab.Client) error) requestCase {
	return nestedCase(name, method, "projects/{projectId}/issues/{issueId}"+suffix,
		map[string]string{"projectId": "5", "issueId": "11"}, call)
}

func mergeRequestCase(name, method, suffix string, call func(ctx context.Context, c *gitlab.Client) error) requestCase {
	return nestedCase(name, method, "projects/{projectId}/merge_requests/{mergeRequestId}"+suffix,
		map[string]string{"projectId": "5", "mergeRequestId": "8"}, call)
}

func milestoneCase(name, method, suffix string, call func(ctx context.Context, c *gitlab.Client) error) requestCase {
	return nestedCase(name, method, "projects/{projectId}/milestones/{milestoneId}"+suffix,
		map[string]string{"projectId": "5", "milestoneId": "6"}, call)
}

func pipelineCase(name, method, suffix string, call func(ctx context.Context, c *gitlab.Client) error) requestCase {
	return nestedCase(name, method, "projects/{projectId}/pipelines/{pipelineId}"+suffix,
		map[string]string{"projectId": "5", "pipelineId": "12"}, call)
}

func projectCase(name, method, suffix string, call func(ctx context.Context, c *gitlab.Client) error) requestCase {
	return nestedCase(name, method, "projects/{projectId}"+suffix, map[string]string{"projectId": "5"}, call)
}

func snippetCase(name, method, suffix string, call func(ctx context.Context, c *gitlab.Client) error) requestCase {
	return nestedCase(name, method, "projects/{projectId}/snippets/{snippetId}"+suffix,
		map[string]string{"projectId": "5", "snippetId": "2"}, call)
}

func userCase(name, method, suffix string, call func(ctx context.Context, c *gitlab.Client) error) requestCase {
	return nestedCase(name, method, "users/{userId}"+suffix, map[string]string{"userId": "7"}, call)
}

// TestResources_EveryMethodCovered сверяет таблицы запросов с экспортированными
// методами всех ресурсов клиента.
func TestResources_EveryMethodCovered(t *testing.T) {
	covered := make(map[string]bool)
	for _, cases := range [][]requestCase{writeCases(), lookupCases()} {
		for _, tc := range cases {
			method, _, _ := strings.Cut(tc.name, " ")
			covered[method] = true
		}
	}

	client := reflect.TypeOf(gitlab.Client{})
	for i := range client.NumField() {
		field := client.Field(i)
		if !field.IsExported() || field.Type.Kind() != reflect.Pointer {
			continue
		}
		for j := range field.Type.NumMethod() {
			name := field.Name + "." + field.Type.Method(j).Name
			assert.True(t, covered[name], "нет проверки запроса для %s", name)
		}
	}
}
