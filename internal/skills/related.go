package skills

// skillPair is an unordered pair of canonical skill names. a is always the
// lexicographically smaller name.
type skillPair struct {
	a, b string
}

func makePair(a, b string) skillPair {
	if a > b {
		a, b = b, a
	}
	return skillPair{a: a, b: b}
}

// relatedScores holds curated similarity scores for skills that are close
// substitutes without being synonyms. Keys use canonical names.
var relatedScores = map[skillPair]float64{
	makePair("docker", "kubernetes"):        0.75,
	makePair("postgresql", "mysql"):         0.80,
	makePair("mysql", "mariadb"):            0.90,
	makePair("postgresql", "mariadb"):       0.75,
	makePair("postgresql", "sql server"):    0.70,
	makePair("mongodb", "postgresql"):       0.50,
	makePair("redis", "memcached"):          0.85,
	makePair("kafka", "rabbitmq"):           0.75,
	makePair("javascript", "typescript"):    0.85,
	makePair("react", "vue"):                0.70,
	makePair("react", "angular"):            0.65,
	makePair("vue", "angular"):              0.65,
	makePair("java", "kotlin"):              0.75,
	makePair("java", "scala"):               0.70,
	makePair("c", "c++"):                    0.80,
	makePair("c++", "rust"):                 0.65,
	makePair("go", "rust"):                  0.60,
	makePair("python", "ruby"):              0.55,
	makePair("django", "flask"):             0.75,
	makePair("flask", "fastapi"):            0.80,
	makePair("django", "fastapi"):           0.70,
	makePair("aws", "google cloud"):         0.70,
	makePair("aws", "azure"):                0.70,
	makePair("google cloud", "azure"):       0.70,
	makePair("terraform", "ansible"):        0.65,
	makePair("tensorflow", "pytorch"):       0.85,
	makePair("pandas", "numpy"):             0.80,
	makePair("grafana", "prometheus"):       0.70,
	makePair("elasticsearch", "opensearch"): 0.90,
}

// RelatedScore returns the curated similarity between two skill names, after
// normalization. The second return is false when the pair is not in the
// table.
func RelatedScore(a, b string) (float64, bool) {
	score, ok := relatedScores[makePair(Normalize(a), Normalize(b))]
	return score, ok
}
