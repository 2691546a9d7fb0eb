package linear

// The GraphQL schema nests related entities ({ state { id } }) where
// the rest of this system wants flat id attributes. The wire structs
// below mirror the selections and flatten into the public types.

const issueFields = `id identifier title description dueDate priority estimate url
  state { id } team { id } project { id } projectMilestone { id }
  parent { id } assignee { id } labels { nodes { id } }`

const projectFields = `id name description url priority startDate targetDate
  lead { id } status { id } members { nodes { id } }`

const milestoneFields = `id name description targetDate project { id }`

const documentFields = `id title content project { id }`

const projectUpdateFields = `id body health createdAt project { id }`

const commentFields = `id body issue { id } projectUpdate { id } parent { id }`

type idRef struct {
	ID string `json:"id"`
}

func refID(r *idRef) string {
	if r == nil {
		return ""
	}
	return r.ID
}

type idRefConnection struct {
	Nodes []idRef `json:"nodes"`
}

func (c idRefConnection) ids() []string {
	ids := make([]string, len(c.Nodes))
	for i, n := range c.Nodes {
		ids[i] = n.ID
	}
	return ids
}

type issueWire struct {
	ID               string          `json:"id"`
	Identifier       string          `json:"identifier"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	DueDate          string          `json:"dueDate"`
	Priority         float64         `json:"priority"`
	Estimate         float64         `json:"estimate"`
	URL              string          `json:"url"`
	State            *idRef          `json:"state"`
	Team             *idRef          `json:"team"`
	Project          *idRef          `json:"project"`
	ProjectMilestone *idRef          `json:"projectMilestone"`
	Parent           *idRef          `json:"parent"`
	Assignee         *idRef          `json:"assignee"`
	Labels           idRefConnection `json:"labels"`
}

func (w issueWire) entity() Issue {
	return Issue{
		ID:          w.ID,
		Identifier:  w.Identifier,
		Title:       w.Title,
		Description: w.Description,
		DueDate:     w.DueDate,
		Priority:    w.Priority,
		Estimate:    w.Estimate,
		URL:         w.URL,
		StateID:     refID(w.State),
		TeamID:      refID(w.Team),
		ProjectID:   refID(w.Project),
		MilestoneID: refID(w.ProjectMilestone),
		ParentID:    refID(w.Parent),
		AssigneeID:  refID(w.Assignee),
		LabelIDs:    w.Labels.ids(),
	}
}

type projectWire struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	URL         string          `json:"url"`
	Priority    float64         `json:"priority"`
	StartDate   string          `json:"startDate"`
	TargetDate  string          `json:"targetDate"`
	Lead        *idRef          `json:"lead"`
	Status      *idRef          `json:"status"`
	Members     idRefConnection `json:"members"`
}

func (w projectWire) entity() Project {
	return Project{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		URL:         w.URL,
		Priority:    w.Priority,
		StartDate:   w.StartDate,
		TargetDate:  w.TargetDate,
		LeadID:      refID(w.Lead),
		StatusID:    refID(w.Status),
		MemberIDs:   w.Members.ids(),
	}
}

type milestoneWire struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TargetDate  string `json:"targetDate"`
	Project     *idRef `json:"project"`
}

func (w milestoneWire) entity() Milestone {
	return Milestone{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		TargetDate:  w.TargetDate,
		ProjectID:   refID(w.Project),
	}
}

type documentWire struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Project *idRef `json:"project"`
}

func (w documentWire) entity() Document {
	return Document{
		ID:        w.ID,
		Title:     w.Title,
		Content:   w.Content,
		ProjectID: refID(w.Project),
	}
}

type projectUpdateWire struct {
	ID        string        `json:"id"`
	Body      string        `json:"body"`
	Health    ProjectHealth `json:"health"`
	CreatedAt string        `json:"createdAt"`
	Project   *idRef        `json:"project"`
}

func (w projectUpdateWire) entity() ProjectUpdate {
	return ProjectUpdate{
		ID:        w.ID,
		Body:      w.Body,
		Health:    w.Health,
		CreatedAt: w.CreatedAt,
		ProjectID: refID(w.Project),
	}
}

type commentWire struct {
	ID            string `json:"id"`
	Body          string `json:"body"`
	Issue         *idRef `json:"issue"`
	ProjectUpdate *idRef `json:"projectUpdate"`
	Parent        *idRef `json:"parent"`
}

func (w commentWire) entity() Comment {
	return Comment{
		ID:              w.ID,
		Body:            w.Body,
		IssueID:         refID(w.Issue),
		ProjectUpdateID: refID(w.ProjectUpdate),
		ParentID:        refID(w.Parent),
	}
}

// convertPage maps a page of wire nodes into a page of entities,
// preserving order and pagination markers.
func convertPage[W, E any](p Page[W], conv func(W) E) Page[E] {
	out := Page[E]{PageInfo: p.PageInfo}
	out.Nodes = make([]E, len(p.Nodes))
	for i, n := range p.Nodes {
		out.Nodes[i] = conv(n)
	}
	return out
}
