package model

import "time"

// Course 课程表，对应 courses
// account_id 与 root_account_id 是指向 accounts 的两条独立外键，可指向同一行也可不同。
type Course struct {
	ID                               int64               `gorm:"column:id;primaryKey" json:"id"`
	Name                             *string             `gorm:"column:name;type:varchar(255)" json:"name,omitempty"`
	CourseCode                       *string             `gorm:"column:course_code;type:varchar(255)" json:"course_code,omitempty"`
	WorkflowState                    CourseWorkflowState `gorm:"column:workflow_state;type:varchar(255)" json:"workflow_state"`
	UUID                             *string             `gorm:"column:uuid;type:varchar(255)" json:"uuid,omitempty"`
	AccountID                        *int64              `gorm:"column:account_id;index" json:"account_id,omitempty"`
	RootAccountID                    *int64              `gorm:"column:root_account_id;index" json:"root_account_id,omitempty"`
	WikiID                           *int64              `gorm:"column:wiki_id" json:"wiki_id,omitempty"`
	EnrollmentTermID                 *int64              `gorm:"column:enrollment_term_id;index" json:"enrollment_term_id,omitempty"`
	SisBatchID                       *int64              `gorm:"column:sis_batch_id" json:"sis_batch_id,omitempty"`
	SisSourceID                      *string             `gorm:"column:sis_source_id;type:varchar(255)" json:"sis_source_id,omitempty"`
	IntegrationID                    *string             `gorm:"column:integration_id;type:varchar(255)" json:"integration_id,omitempty"`
	GroupWeightingScheme             *string             `gorm:"column:group_weighting_scheme;type:varchar(255)" json:"group_weighting_scheme,omitempty"`
	StartAt                          *time.Time          `gorm:"column:start_at" json:"start_at,omitempty"`
	ConcludeAt                       *time.Time          `gorm:"column:conclude_at" json:"conclude_at,omitempty"`
	GradingStandardID                *int64              `gorm:"column:grading_standard_id" json:"grading_standard_id,omitempty"`
	IsPublic                         bool                `gorm:"column:is_public" json:"is_public"`
	AllowStudentWikiEdits            bool                `gorm:"column:allow_student_wiki_edits" json:"allow_student_wiki_edits"`
	ShowPublicContextMessages        bool                `gorm:"column:show_public_context_messages" json:"show_public_context_messages"`
	SyllabusBody                     *string             `gorm:"column:syllabus_body;type:text" json:"syllabus_body,omitempty"`
	AllowStudentForumAttachments     bool                `gorm:"column:allow_student_forum_attachments" json:"allow_student_forum_attachments"`
	DefaultWikiEditingRoles          *string             `gorm:"column:default_wiki_editing_roles;type:varchar(255)" json:"default_wiki_editing_roles,omitempty"`
	AllowStudentOrganizedGroups      bool                `gorm:"column:allow_student_organized_groups" json:"allow_student_organized_groups"`
	DefaultView                      *string             `gorm:"column:default_view;type:varchar(255)" json:"default_view,omitempty"`
	AbstractCourseID                 *int64              `gorm:"column:abstract_course_id" json:"abstract_course_id,omitempty"`
	OpenEnrollment                   bool                `gorm:"column:open_enrollment" json:"open_enrollment"`
	StorageQuota                     *int64              `gorm:"column:storage_quota" json:"storage_quota,omitempty"`
	TabConfiguration                 *string             `gorm:"column:tab_configuration;type:text" json:"tab_configuration,omitempty"`
	AllowWikiComments                bool                `gorm:"column:allow_wiki_comments" json:"allow_wiki_comments"`
	TurnitinComments                 *string             `gorm:"column:turnitin_comments;type:text" json:"turnitin_comments,omitempty"`
	SelfEnrollment                   bool                `gorm:"column:self_enrollment" json:"self_enrollment"`
	License                          *string             `gorm:"column:license;type:varchar(255)" json:"license,omitempty"`
	Indexed                          bool                `gorm:"column:indexed" json:"indexed"`
	RestrictEnrollmentsToCourseDates bool                `gorm:"column:restrict_enrollments_to_course_dates" json:"restrict_enrollments_to_course_dates"`
	TemplateCourseID                 *int64              `gorm:"column:template_course_id" json:"template_course_id,omitempty"`
	Locale                           *string             `gorm:"column:locale;type:varchar(255)" json:"locale,omitempty"`
	Settings                         *string             `gorm:"column:settings;type:text" json:"settings,omitempty"`
	ReplacementCourseID              *int64              `gorm:"column:replacement_course_id" json:"replacement_course_id,omitempty"`
	StuckSisFields                   *string             `gorm:"column:stuck_sis_fields;type:text" json:"stuck_sis_fields,omitempty"`
	PublicDescription                *string             `gorm:"column:public_description;type:text" json:"public_description,omitempty"`
	SelfEnrollmentCode               *string             `gorm:"column:self_enrollment_code;type:varchar(255)" json:"self_enrollment_code,omitempty"`
	SelfEnrollmentLimit              *int64              `gorm:"column:self_enrollment_limit" json:"self_enrollment_limit,omitempty"`
	TimeZone                         *string             `gorm:"column:time_zone;type:varchar(255)" json:"time_zone,omitempty"`
	LTIContextID                     *string             `gorm:"column:lti_context_id;type:varchar(255)" json:"lti_context_id,omitempty"`
	TurnitinID                       *int64              `gorm:"column:turnitin_id" json:"turnitin_id,omitempty"`
	ShowAnnouncementsOnHomePage      bool                `gorm:"column:show_announcements_on_home_page" json:"show_announcements_on_home_page"`
	HomePageAnnouncementLimit        *int64              `gorm:"column:home_page_announcement_limit" json:"home_page_announcement_limit,omitempty"`
	LatestOutcomeImportID            *int64              `gorm:"column:latest_outcome_import_id" json:"latest_outcome_import_id,omitempty"`
	GradePassbackSetting             *string             `gorm:"column:grade_passback_setting;type:varchar(255)" json:"grade_passback_setting,omitempty"`
	Timestamps
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }

func (c Course) PrimaryKey() int64 { return c.ID }

func (c Course) Label() string { return labelOr(c.Name, c.ID) }

func (c Course) String() string { return describe("Course", c) }
