package common

const (
	RedisStreamStrategyGenerate = "strategy.generate"
	RedisStreamStrategyOptimize = "strategy.optimize"

	RedisStreamGroup    = "generator-group"
	RedisStreamConsumer = "generator-consumer"

	// KnowledgeCategoryStrategies is the fixed category label under which
	// generated strategies are persisted to the knowledge repository.
	KnowledgeCategoryStrategies = "monetization_strategies"
)
