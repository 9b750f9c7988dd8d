package domain

// Project is a single project record as exposed over the API.
// It is storage-agnostic; repositories translate their own identifier into ID.
type Project struct {
	ID                string   `json:"_id"`
	ProjectID         string   `json:"project_id"`
	ProjectName       string   `json:"project_name"`
	ProjectDesc       string   `json:"project_desc"`
	MembersList       []string `json:"members_list"`
	NumOfHardwareSets int      `json:"num_of_hardware_sets"`
	HardwareSetID     []string `json:"hardware_set_id"`
}

// Field names shared by the wire format and every store.
const (
	FieldID                = "_id"
	FieldProjectID         = "project_id"
	FieldProjectName       = "project_name"
	FieldProjectDesc       = "project_desc"
	FieldMembersList       = "members_list"
	FieldNumOfHardwareSets = "num_of_hardware_sets"
	FieldHardwareSetID     = "hardware_set_id"
)

// ToMapping returns the six persisted fields of p. The store identifier is not included.
func (p Project) ToMapping() map[string]interface{} {
	return map[string]interface{}{
		FieldProjectID:         p.ProjectID,
		FieldProjectName:       p.ProjectName,
		FieldProjectDesc:       p.ProjectDesc,
		FieldMembersList:       NonNil(p.MembersList),
		FieldNumOfHardwareSets: p.NumOfHardwareSets,
		FieldHardwareSetID:     NonNil(p.HardwareSetID),
	}
}

// HasMember reports whether username is already in the member list.
func (p Project) HasMember(username string) bool {
	for _, m := range p.MembersList {
		if m == username {
			return true
		}
	}
	return false
}

// NonNil returns s, or an empty slice when s is nil.
func NonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
