package models

type SetupStage string

const (
	SetupStageCreateUser      SetupStage = "CREATE_USER"
	SetupStageCreateWorkspace SetupStage = "CREATE_WORKSPACE"
	SetupStageComplete        SetupStage = "COMPLETE"
)
