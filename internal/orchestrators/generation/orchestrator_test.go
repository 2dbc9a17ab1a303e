package generation_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/entities/wfrp"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/errors"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/orchestrators/generation"
	generationmock "github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/orchestrators/generation/mock"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/repositories/artifact"
	artifactmock "github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/repositories/artifact/mock"
)

const textFixture = `More Subspecies of the Old World

• Bretonnian •
Skills: Animal Care, Cool,
Endurance
Talents: Noble Blood or Beneath Notice,
3 Random Talents
`

type orchestratorTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockStore *artifactmock.MockStore
	mockSheet *generationmock.MockSheetSource
	service   generation.Service
	ctx       context.Context
}

func (s *orchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = artifactmock.NewMockStore(s.ctrl)
	s.mockSheet = generationmock.NewMockSheetSource(s.ctrl)
	s.ctx = context.Background()

	service, err := generation.NewOrchestrator(&generation.Config{
		Store:  s.mockStore,
		Sheets: s.mockSheet,
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *orchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *orchestratorTestSuite) writeFixture(name, content string) string {
	path := filepath.Join(s.T().TempDir(), name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (s *orchestratorTestSuite) TestRunTextSource() {
	path := s.writeFixture("bretonnian.txt", textFixture)

	s.mockStore.EXPECT().Prepare(s.ctx).Return(nil)
	s.mockStore.EXPECT().
		SaveDataset(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input artifact.SaveDatasetInput) (*artifact.SaveDatasetOutput, error) {
			s.Equal("bretonnian-humans", input.Dataset.ID)
			s.Equal(wfrp.SpeciesHuman, input.Dataset.Species)
			s.Require().Len(input.Dataset.Entries, 1)
			s.Equal([]string{"Animal Care", "Cool", "Endurance"}, input.Dataset.Entries[0].Skills)
			s.Equal(wfrp.TalentList{"Noble Blood, Beneath Notice", "random[3]"}, input.Dataset.Entries[0].Talents)
			return &artifact.SaveDatasetOutput{}, nil
		})
	s.mockStore.EXPECT().
		SaveManifest(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input artifact.SaveManifestInput) (*artifact.SaveManifestOutput, error) {
			s.Require().Len(input.Manifest.Entries, 1)
			s.Equal("bretonnian-humans", input.Manifest.Entries[0].ID)
			return &artifact.SaveManifestOutput{}, nil
		})

	output, err := s.service.Run(s.ctx, &generation.RunInput{
		Sources: []generation.Source{
			{Name: "Bretonnian Humans", Kind: generation.SourceKindText, Path: path},
		},
	})
	s.Require().NoError(err)
	s.Len(output.Datasets, 1)
	s.Len(output.Manifest.Entries, 1)
}

func (s *orchestratorTestSuite) TestRunCSVSource() {
	path := s.writeFixture("elves.csv", "row,data\n"+
		"1,• Caledor •\n"+
		"2,Skills\n"+
		"3,\"Cool, Entertain\"\n"+
		"4,Talents\n"+
		"5,Second Sight\n")

	s.mockStore.EXPECT().Prepare(s.ctx).Return(nil)
	s.mockStore.EXPECT().
		SaveDataset(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input artifact.SaveDatasetInput) (*artifact.SaveDatasetOutput, error) {
			s.Equal("high-elves", input.Dataset.ID)
			s.Empty(input.Dataset.Species)
			return &artifact.SaveDatasetOutput{}, nil
		})
	s.mockStore.EXPECT().SaveManifest(s.ctx, gomock.Any()).Return(&artifact.SaveManifestOutput{}, nil)

	_, err := s.service.Run(s.ctx, &generation.RunInput{
		Sources: []generation.Source{
			{Name: "High Elves", Kind: generation.SourceKindCSV, Path: path},
		},
	})
	s.Require().NoError(err)
}

func (s *orchestratorTestSuite) TestRunSheetSource() {
	rows := [][]string{
		{"", "• Bretonnian •"},
		{"", "Skills"},
		{"", "Cool"},
		{"", "Talents"},
		{"", "Luck"},
	}

	s.mockSheet.EXPECT().GetRows(s.ctx, "Bretonnian Humans").Return(rows, nil)
	s.mockStore.EXPECT().Prepare(s.ctx).Return(nil)
	s.mockStore.EXPECT().SaveDataset(s.ctx, gomock.Any()).Return(&artifact.SaveDatasetOutput{}, nil)
	s.mockStore.EXPECT().SaveManifest(s.ctx, gomock.Any()).Return(&artifact.SaveManifestOutput{}, nil)

	_, err := s.service.Run(s.ctx, &generation.RunInput{
		Sources: []generation.Source{
			{Name: "Bretonnian Humans", Kind: generation.SourceKindSheet},
		},
	})
	s.Require().NoError(err)
}

func (s *orchestratorTestSuite) TestRunDiscoversSheets() {
	rows := [][]string{
		{"• Bretonnian •"},
		{"Skills"},
		{"Cool"},
		{"Talents"},
		{"Luck"},
	}

	s.mockSheet.EXPECT().ListSheets(s.ctx).Return([]string{"Bretonnian Humans"}, nil)
	s.mockSheet.EXPECT().GetRows(s.ctx, "Bretonnian Humans").Return(rows, nil)
	s.mockStore.EXPECT().Prepare(s.ctx).Return(nil)
	s.mockStore.EXPECT().SaveDataset(s.ctx, gomock.Any()).Return(&artifact.SaveDatasetOutput{}, nil)
	s.mockStore.EXPECT().SaveManifest(s.ctx, gomock.Any()).Return(&artifact.SaveManifestOutput{}, nil)

	output, err := s.service.Run(s.ctx, &generation.RunInput{DiscoverSheets: true})
	s.Require().NoError(err)
	s.Len(output.Datasets, 1)
}

func (s *orchestratorTestSuite) TestRunMissingFileFailsBeforeSideEffects() {
	// No Prepare expectation: a bad source must be caught before the
	// output dir is touched
	_, err := s.service.Run(s.ctx, &generation.RunInput{
		Sources: []generation.Source{
			{Name: "Bretonnian Humans", Kind: generation.SourceKindText, Path: "/nonexistent/source.txt"},
		},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *orchestratorTestSuite) TestRunUnknownKind() {
	_, err := s.service.Run(s.ctx, &generation.RunInput{
		Sources: []generation.Source{
			{Name: "Bretonnian Humans", Kind: "xml", Path: "x"},
		},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "unknown source kind")
}

func (s *orchestratorTestSuite) TestRunIncompleteSourceAbortsBeforeManifest() {
	path := s.writeFixture("broken.txt", "• Bretonnian •\nCool, Luck\n")

	s.mockStore.EXPECT().Prepare(s.ctx).Return(nil)
	// No SaveDataset or SaveManifest: the malformed source aborts the run

	_, err := s.service.Run(s.ctx, &generation.RunInput{
		Sources: []generation.Source{
			{Name: "Bretonnian Humans", Kind: generation.SourceKindText, Path: path},
		},
	})
	s.Require().Error(err)
}

func (s *orchestratorTestSuite) TestRunStoreFailurePropagates() {
	path := s.writeFixture("bretonnian.txt", textFixture)

	s.mockStore.EXPECT().Prepare(s.ctx).Return(nil)
	s.mockStore.EXPECT().
		SaveDataset(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("disk full"))

	_, err := s.service.Run(s.ctx, &generation.RunInput{
		Sources: []generation.Source{
			{Name: "Bretonnian Humans", Kind: generation.SourceKindText, Path: path},
		},
	})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(orchestratorTestSuite))
}

func TestNewOrchestrator_RequiresStore(t *testing.T) {
	_, err := generation.NewOrchestrator(&generation.Config{})
	if err == nil {
		t.Fatal("expected config validation error")
	}
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
