package wordbank

import (
	"strings"
	"time"

	"github.com/example/vocabtrainer/pkg/models"
)

// seedWords is the starter catalog every learner begins with. IDs are stable
// so new seed words added in later releases can be back-filled into existing
// catalogs without duplicating the ones already stored.
var seedWords = []models.Word{
	{ID: "word_001", SourceText: "alma", TargetText: "りんご"},
	{ID: "word_002", SourceText: "kutya", TargetText: "犬"},
	{ID: "word_003", SourceText: "ház", TargetText: "家"},
	{ID: "word_004", SourceText: "könyv", TargetText: "本"},
	{ID: "word_005", SourceText: "asztal", TargetText: "テーブル"},
	{ID: "word_006", SourceText: "szék", TargetText: "椅子"},
	{ID: "word_007", SourceText: "víz", TargetText: "水"},
	{ID: "word_008", SourceText: "kenyér", TargetText: "パン"},
	{ID: "word_009", SourceText: "autó", TargetText: "車"},
	{ID: "word_010", SourceText: "város", TargetText: "街"},
	{ID: "word_011", SourceText: "utca", TargetText: "通り"},
	{ID: "word_012", SourceText: "iskola", TargetText: "学校"},
	{ID: "word_013", SourceText: "tanuló", TargetText: "学生"},
	{ID: "word_014", SourceText: "tanár", TargetText: "先生"},
	{ID: "word_015", SourceText: "barát", TargetText: "友達"},
	{ID: "word_016", SourceText: "enni", TargetText: "食べる"},
	{ID: "word_017", SourceText: "inni", TargetText: "飲む"},
	{ID: "word_018", SourceText: "látni", TargetText: "見る"},
	{ID: "word_019", SourceText: "menni", TargetText: "行く"},
	{ID: "word_020", SourceText: "jönni", TargetText: "来る"},
}

// ensureSeedWords back-fills seed words missing from the loaded catalog and
// persists them. Words the learner already has, by id or by source text, are
// left alone.
func (s *Service) ensureSeedWords(now time.Time) {
	bySource := make(map[string]bool, len(s.words))
	for _, w := range s.words {
		bySource[strings.ToLower(w.SourceText)] = true
	}
	for _, seed := range seedWords {
		if _, ok := s.words[seed.ID]; ok {
			continue
		}
		if bySource[strings.ToLower(seed.SourceText)] {
			continue
		}
		progress := s.newProgress(seed.ID, now)
		s.words[seed.ID] = seed
		s.progress[seed.ID] = progress
		s.persistItem(seed, progress)
	}
}
