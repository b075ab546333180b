package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/haul/internal/app"
	"go.trai.ch/haul/internal/core/domain"
	"go.trai.ch/haul/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func reportArtifact(ctrl *gomock.Controller, id domain.ArtifactID, path string) *mocks.MockArtifact {
	artifact := mocks.NewMockArtifact(ctrl)
	artifact.EXPECT().ID().Return(id).AnyTimes()
	artifact.EXPECT().File(gomock.Any()).Return(path, nil).AnyTimes()
	return artifact
}

func TestReport_Render_Golden(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mocks.NewMockHasher(ctrl)

	component := domain.NewComponentRef("org.example", "engine", "2.1.0")
	attrs := domain.NewAttributes(map[string]string{"os": "linux", "usage": "runtime"})

	mainJar := domain.ArtifactID{
		Component: component,
		Name:      domain.NewInternedString("engine"),
		Extension: domain.NewInternedString("jar"),
	}
	nativeLib := domain.ArtifactID{
		Component:  component,
		Name:       domain.NewInternedString("engine"),
		Classifier: domain.NewInternedString("native"),
		Extension:  domain.NewInternedString("so"),
	}

	hasher.EXPECT().Fingerprint("/work/store/engine.jar").Return("8f3a21bc", nil)
	hasher.EXPECT().Fingerprint("/work/store/engine-native.so").Return("4bd11ea9", nil)

	report := app.NewReport(context.Background(), hasher)
	report.VisitArtifact(attrs, reportArtifact(ctrl, mainJar, "/work/store/engine.jar"))
	report.VisitFailure(errors.New("artifact not found: engine-sources.jar (org.example:engine:2.1.0)"))
	report.VisitArtifact(attrs, reportArtifact(ctrl, nativeLib, "/work/store/engine-native.so"))

	assert.Equal(t, 1, report.Failed())

	g := goldie.New(t)
	g.Assert(t, "report_mixed", []byte(report.Render()))
}

func TestReport_RequiresArtifactFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	report := app.NewReport(context.Background(), mocks.NewMockHasher(ctrl))

	assert.True(t, report.RequiresArtifactFiles())
}

func TestReport_FingerprintErrorLeavesLineWithoutHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mocks.NewMockHasher(ctrl)
	hasher.EXPECT().Fingerprint(gomock.Any()).Return("", errors.New("unreadable"))

	id := domain.ArtifactID{
		Component: domain.NewComponentRef("org.example", "engine", "2.1.0"),
		Name:      domain.NewInternedString("engine"),
		Extension: domain.NewInternedString("jar"),
	}

	report := app.NewReport(context.Background(), hasher)
	report.VisitArtifact(domain.Attributes{}, reportArtifact(ctrl, id, "/work/store/engine.jar"))

	assert.Equal(t, 0, report.Failed())
	assert.Contains(t, report.Render(), "engine.jar (org.example:engine:2.1.0)")
}
