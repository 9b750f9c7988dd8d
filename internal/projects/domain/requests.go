package domain

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateProjectRequest is the body accepted by project creation.
// Absent fields decode to their zero values; ToProject fills the rest.
type CreateProjectRequest struct {
	ProjectID         string   `json:"project_id"`
	ProjectName       string   `json:"project_name"`
	ProjectDesc       string   `json:"project_desc"`
	MembersList       []string `json:"members_list"`
	NumOfHardwareSets int      `json:"num_of_hardware_sets"`
	HardwareSetID     []string `json:"hardware_set_id"`
}

// Trim strips surrounding whitespace from the two required fields.
func (r *CreateProjectRequest) Trim() {
	r.ProjectID = strings.TrimSpace(r.ProjectID)
	r.ProjectName = strings.TrimSpace(r.ProjectName)
}

// Validate checks that project_id and project_name are present.
// Call Trim first so whitespace-only values are rejected.
func (r CreateProjectRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.ProjectID, validation.Required),
		validation.Field(&r.ProjectName, validation.Required),
	)
	if err != nil {
		return ErrValidation
	}
	return nil
}

// ToProject builds the canonical record, defaulting the list fields to empty.
func (r CreateProjectRequest) ToProject() Project {
	return NewProject(r.ProjectID, r.ProjectName, r.ProjectDesc, r.MembersList, r.NumOfHardwareSets, r.HardwareSetID)
}

// NewProject returns a Project with nil slices replaced by empty ones.
func NewProject(projectID, name, desc string, members []string, numHardwareSets int, hardwareSetIDs []string) Project {
	return Project{
		ProjectID:         projectID,
		ProjectName:       name,
		ProjectDesc:       desc,
		MembersList:       append([]string{}, members...),
		NumOfHardwareSets: numHardwareSets,
		HardwareSetID:     append([]string{}, hardwareSetIDs...),
	}
}

// UpdateProjectRequest is a partial field set. A nil pointer means the field was not sent.
// ProjectID is decoded only so it can be discarded.
type UpdateProjectRequest struct {
	ProjectID         *string   `json:"project_id,omitempty"`
	ProjectName       *string   `json:"project_name,omitempty"`
	ProjectDesc       *string   `json:"project_desc,omitempty"`
	MembersList       *[]string `json:"members_list,omitempty"`
	NumOfHardwareSets *int      `json:"num_of_hardware_sets,omitempty"`
	HardwareSetID     *[]string `json:"hardware_set_id,omitempty"`
}

// Fields returns the fields present in the request, keyed by their stored name.
// project_id is never included.
func (r UpdateProjectRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{}, 5)
	if r.ProjectName != nil {
		fields[FieldProjectName] = *r.ProjectName
	}
	if r.ProjectDesc != nil {
		fields[FieldProjectDesc] = *r.ProjectDesc
	}
	if r.MembersList != nil {
		fields[FieldMembersList] = NonNil(*r.MembersList)
	}
	if r.NumOfHardwareSets != nil {
		fields[FieldNumOfHardwareSets] = *r.NumOfHardwareSets
	}
	if r.HardwareSetID != nil {
		fields[FieldHardwareSetID] = NonNil(*r.HardwareSetID)
	}
	return fields
}
