// Package linear is the boundary to the Linear GraphQL API: entity
// types, a thin HTTP transport, cursor-paginated list queries, and
// mutations returning success envelopes.
//
// The transport is deliberately dumb: one POST per call, no retries,
// no caching. Hydration and staleness policy live in the packages
// above this one.
package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultEndpoint = "https://api.linear.app/graphql"

// ErrNoTeam is returned by FirstTeam when the authenticated user
// belongs to zero teams. This is a fatal configuration error for the
// session and is never retried.
var ErrNoTeam = errors.New("no team found for the current user")

// Client talks to the Linear GraphQL endpoint.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the GraphQL endpoint (used by tests and
// self-hosted proxies).
func WithEndpoint(url string) Option {
	return func(c *Client) { c.endpoint = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient creates a Client authenticated with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		endpoint: defaultEndpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// do executes one GraphQL request and decodes the data payload into out.
// GraphQL-level errors are surfaced as a single joined Go error.
func (c *Client) do(ctx context.Context, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling linear: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("linear returned %s: %s", resp.Status, strings.TrimSpace(string(snippet)))
	}

	var gr graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if len(gr.Errors) > 0 {
		msgs := make([]string, len(gr.Errors))
		for i, e := range gr.Errors {
			msgs[i] = e.Message
		}
		return fmt.Errorf("linear: %s", strings.Join(msgs, "; "))
	}
	if out != nil {
		if err := json.Unmarshal(gr.Data, out); err != nil {
			return fmt.Errorf("decoding data: %w", err)
		}
	}
	return nil
}

// --- Team resolution ---

const firstTeamQuery = `query FirstTeam {
  viewer { teams(first: 1) { nodes { id name key } } }
}`

// FirstTeam resolves the first team associated with the authenticated
// user. Returns ErrNoTeam if the user belongs to no team.
func (c *Client) FirstTeam(ctx context.Context) (Team, error) {
	var data struct {
		Viewer struct {
			Teams struct {
				Nodes []Team `json:"nodes"`
			} `json:"teams"`
		} `json:"viewer"`
	}
	if err := c.do(ctx, firstTeamQuery, nil, &data); err != nil {
		return Team{}, err
	}
	if len(data.Viewer.Teams.Nodes) == 0 {
		return Team{}, ErrNoTeam
	}
	return data.Viewer.Teams.Nodes[0], nil
}

// --- Paginated list queries ---
//
// Each method fetches exactly one page; CollectAll drives them to
// completion. An empty cursor requests the first page.

func pageVars(cursor string, extra map[string]any) map[string]any {
	vars := map[string]any{"first": pageSize}
	if cursor != "" {
		vars["after"] = cursor
	}
	for k, v := range extra {
		vars[k] = v
	}
	return vars
}

const workflowStatesQuery = `query WorkflowStates($teamId: ID!, $first: Int!, $after: String) {
  workflowStates(filter: { team: { id: { eq: $teamId } } }, first: $first, after: $after) {
    nodes { id name type }
    pageInfo { hasNextPage endCursor }
  }
}`

// WorkflowStates fetches one page of the team's issue statuses.
func (c *Client) WorkflowStates(ctx context.Context, teamID, cursor string) (Page[WorkflowState], error) {
	var data struct {
		WorkflowStates Page[WorkflowState] `json:"workflowStates"`
	}
	err := c.do(ctx, workflowStatesQuery, pageVars(cursor, map[string]any{"teamId": teamID}), &data)
	return data.WorkflowStates, err
}

const projectStatusesQuery = `query ProjectStatuses($first: Int!, $after: String) {
  projectStatuses(first: $first, after: $after) {
    nodes { id name type }
    pageInfo { hasNextPage endCursor }
  }
}`

// ProjectStatuses fetches one page of the organization's project statuses.
func (c *Client) ProjectStatuses(ctx context.Context, cursor string) (Page[ProjectStatus], error) {
	var data struct {
		ProjectStatuses Page[ProjectStatus] `json:"projectStatuses"`
	}
	err := c.do(ctx, projectStatusesQuery, pageVars(cursor, nil), &data)
	return data.ProjectStatuses, err
}

const issuesQuery = `query Issues($teamId: ID!, $first: Int!, $after: String) {
  issues(filter: { team: { id: { eq: $teamId } } }, first: $first, after: $after) {
    nodes { ` + issueFields + ` }
    pageInfo { hasNextPage endCursor }
  }
}`

// Issues fetches one page of the team's issues.
func (c *Client) Issues(ctx context.Context, teamID, cursor string) (Page[Issue], error) {
	var data struct {
		Issues Page[issueWire] `json:"issues"`
	}
	err := c.do(ctx, issuesQuery, pageVars(cursor, map[string]any{"teamId": teamID}), &data)
	return convertPage(data.Issues, issueWire.entity), err
}

const projectsQuery = `query Projects($first: Int!, $after: String) {
  projects(first: $first, after: $after) {
    nodes { ` + projectFields + ` }
    pageInfo { hasNextPage endCursor }
  }
}`

// Projects fetches one page of the organization's projects.
func (c *Client) Projects(ctx context.Context, cursor string) (Page[Project], error) {
	var data struct {
		Projects Page[projectWire] `json:"projects"`
	}
	err := c.do(ctx, projectsQuery, pageVars(cursor, nil), &data)
	return convertPage(data.Projects, projectWire.entity), err
}

const documentsQuery = `query Documents($first: Int!, $after: String) {
  documents(first: $first, after: $after) {
    nodes { ` + documentFields + ` }
    pageInfo { hasNextPage endCursor }
  }
}`

// Documents fetches one page of the organization's documents.
func (c *Client) Documents(ctx context.Context, cursor string) (Page[Document], error) {
	var data struct {
		Documents Page[documentWire] `json:"documents"`
	}
	err := c.do(ctx, documentsQuery, pageVars(cursor, nil), &data)
	return convertPage(data.Documents, documentWire.entity), err
}

const usersQuery = `query Users($first: Int!, $after: String) {
  users(first: $first, after: $after) {
    nodes { id name email }
    pageInfo { hasNextPage endCursor }
  }
}`

// Users fetches one page of the organization's members.
func (c *Client) Users(ctx context.Context, cursor string) (Page[User], error) {
	var data struct {
		Users Page[User] `json:"users"`
	}
	err := c.do(ctx, usersQuery, pageVars(cursor, nil), &data)
	return data.Users, err
}

const labelsQuery = `query Labels($first: Int!, $after: String) {
  issueLabels(first: $first, after: $after) {
    nodes { id name }
    pageInfo { hasNextPage endCursor }
  }
}`

// Labels fetches one page of the organization's issue labels.
func (c *Client) Labels(ctx context.Context, cursor string) (Page[Label], error) {
	var data struct {
		IssueLabels Page[Label] `json:"issueLabels"`
	}
	err := c.do(ctx, labelsQuery, pageVars(cursor, nil), &data)
	return data.IssueLabels, err
}

const projectUpdatesQuery = `query ProjectUpdates($projectId: ID!, $first: Int!, $after: String) {
  projectUpdates(filter: { project: { id: { eq: $projectId } } }, first: $first, after: $after) {
    nodes { ` + projectUpdateFields + ` }
    pageInfo { hasNextPage endCursor }
  }
}`

// ProjectUpdates fetches one page of a project's status updates.
func (c *Client) ProjectUpdates(ctx context.Context, projectID, cursor string) (Page[ProjectUpdate], error) {
	var data struct {
		ProjectUpdates Page[projectUpdateWire] `json:"projectUpdates"`
	}
	err := c.do(ctx, projectUpdatesQuery, pageVars(cursor, map[string]any{"projectId": projectID}), &data)
	return convertPage(data.ProjectUpdates, projectUpdateWire.entity), err
}

const projectMilestonesQuery = `query ProjectMilestones($projectId: ID!, $first: Int!, $after: String) {
  projectMilestones(filter: { project: { id: { eq: $projectId } } }, first: $first, after: $after) {
    nodes { ` + milestoneFields + ` }
    pageInfo { hasNextPage endCursor }
  }
}`

// ProjectMilestones fetches one page of a project's milestones.
func (c *Client) ProjectMilestones(ctx context.Context, projectID, cursor string) (Page[Milestone], error) {
	var data struct {
		ProjectMilestones Page[milestoneWire] `json:"projectMilestones"`
	}
	err := c.do(ctx, projectMilestonesQuery, pageVars(cursor, map[string]any{"projectId": projectID}), &data)
	return convertPage(data.ProjectMilestones, milestoneWire.entity), err
}

const issueQuery = `query Issue($id: String!) {
  issue(id: $id) { ` + issueFields + ` }
}`

// Issue fetches a single issue by id.
func (c *Client) Issue(ctx context.Context, id string) (Issue, error) {
	var data struct {
		Issue *issueWire `json:"issue"`
	}
	if err := c.do(ctx, issueQuery, map[string]any{"id": id}, &data); err != nil {
		return Issue{}, err
	}
	if data.Issue == nil {
		return Issue{}, fmt.Errorf("issue %q not found", id)
	}
	return data.Issue.entity(), nil
}
