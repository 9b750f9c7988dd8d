package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProjectRequest_ToProject(t *testing.T) {
	t.Run("applies defaults for missing fields", func(t *testing.T) {
		req := CreateProjectRequest{ProjectID: "P1", ProjectName: "Demo"}

		p := req.ToProject()
		assert.Equal(t, "P1", p.ProjectID)
		assert.Equal(t, "Demo", p.ProjectName)
		assert.Equal(t, "", p.ProjectDesc)
		assert.NotNil(t, p.MembersList)
		assert.Empty(t, p.MembersList)
		assert.NotNil(t, p.HardwareSetID)
		assert.Empty(t, p.HardwareSetID)
		assert.Equal(t, 0, p.NumOfHardwareSets)
	})

	t.Run("copies provided fields", func(t *testing.T) {
		req := CreateProjectRequest{
			ProjectID:         "P2",
			ProjectName:       "Lab",
			ProjectDesc:       "bench work",
			MembersList:       []string{"bob"},
			NumOfHardwareSets: 2,
			HardwareSetID:     []string{"HW1", "HW2"},
		}

		p := req.ToProject()
		assert.Equal(t, []string{"bob"}, p.MembersList)
		assert.Equal(t, 2, p.NumOfHardwareSets)
		assert.Equal(t, []string{"HW1", "HW2"}, p.HardwareSetID)
		assert.Equal(t, "bench work", p.ProjectDesc)
	})

	t.Run("does not alias the request slices", func(t *testing.T) {
		members := []string{"bob"}
		p := CreateProjectRequest{ProjectID: "P3", ProjectName: "X", MembersList: members}.ToProject()
		p.MembersList[0] = "mallory"
		assert.Equal(t, "bob", members[0])
	})
}

func TestCreateProjectRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateProjectRequest
		wantErr bool
	}{
		{"both present", CreateProjectRequest{ProjectID: "P1", ProjectName: "Demo"}, false},
		{"missing id", CreateProjectRequest{ProjectName: "Demo"}, true},
		{"missing name", CreateProjectRequest{ProjectID: "P1"}, true},
		{"whitespace only", CreateProjectRequest{ProjectID: "  ", ProjectName: "\t"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			req.Trim()
			err := req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestProject_ToMapping(t *testing.T) {
	p := Project{ID: "abc", ProjectID: "P1", ProjectName: "Demo"}

	m := p.ToMapping()
	require.Len(t, m, 6)
	assert.NotContains(t, m, FieldID)
	assert.Equal(t, "P1", m[FieldProjectID])
	assert.Equal(t, "Demo", m[FieldProjectName])
	assert.Equal(t, "", m[FieldProjectDesc])
	assert.Equal(t, []string{}, m[FieldMembersList])
	assert.Equal(t, 0, m[FieldNumOfHardwareSets])
	assert.Equal(t, []string{}, m[FieldHardwareSetID])
}

func TestNonNil(t *testing.T) {
	assert.Equal(t, []string{}, NonNil(nil))
	assert.Equal(t, []string{"a"}, NonNil([]string{"a"}))
}

func TestProject_HasMember(t *testing.T) {
	p := Project{MembersList: []string{"alice", "bob"}}
	assert.True(t, p.HasMember("bob"))
	assert.False(t, p.HasMember("carol"))
}

func TestUpdateProjectRequest_Fields(t *testing.T) {
	t.Run("drops project_id", func(t *testing.T) {
		id := "P9"
		desc := "updated"
		req := UpdateProjectRequest{ProjectID: &id, ProjectDesc: &desc}

		fields := req.Fields()
		assert.Equal(t, map[string]interface{}{FieldProjectDesc: "updated"}, fields)
	})

	t.Run("empty request yields no fields", func(t *testing.T) {
		assert.Empty(t, UpdateProjectRequest{}.Fields())
	})

	t.Run("carries every present field", func(t *testing.T) {
		name := "Renamed"
		n := 3
		members := []string{"alice"}
		var hw []string
		req := UpdateProjectRequest{
			ProjectName:       &name,
			NumOfHardwareSets: &n,
			MembersList:       &members,
			HardwareSetID:     &hw,
		}

		fields := req.Fields()
		assert.Len(t, fields, 4)
		assert.Equal(t, "Renamed", fields[FieldProjectName])
		assert.Equal(t, 3, fields[FieldNumOfHardwareSets])
		assert.Equal(t, []string{"alice"}, fields[FieldMembersList])
		assert.Equal(t, []string{}, fields[FieldHardwareSetID])
	})
}
