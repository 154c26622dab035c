package repository

import (
	"strings"

	"github.com/mainhusharm/windsurf/internal/domain"
)

// StaticRuleSource is the in-process prop-firm rulebook. It satisfies
// domain.RuleSource so production can swap in a persisted table without
// touching the generator.
type StaticRuleSource struct {
	rules        map[string]domain.PropFirmRuleSet
	conservative domain.PropFirmRuleSet
}

func NewStaticRuleSource() *StaticRuleSource {
	src := &StaticRuleSource{
		rules: make(map[string]domain.PropFirmRuleSet),
		conservative: domain.PropFirmRuleSet{
			FirmName:           "Conservative Default",
			AccountType:        "Default",
			DailyLossLimit:     0.04,
			MaxDrawdown:        0.08,
			ProfitTargetPhase1: 0.08,
			ProfitTargetPhase2: 0.05,
			MinTradingDays:     5,
			ConsistencyRule:    0.25,
			Leverage:           map[string]int{"forex": 100},
			NewsTrading:        domain.NewsTradingAllowed,
			WeekendHolding:     domain.WeekendHoldingAllowed,
		},
	}

	quantTekel := domain.PropFirmRuleSet{
		DailyLossLimit:     0.04,
		MaxDrawdown:        0.08,
		ProfitTargetPhase1: 0.06,
		ProfitTargetPhase2: 0.05,
		MinTradingDays:     4,
		ConsistencyRule:    0.30,
		Leverage:           map[string]int{"forex": 30, "metals": 15, "crypto": 1},
		NewsTrading:        domain.NewsTradingRestricted,
		WeekendHolding:     domain.WeekendHoldingAllowedWithFees,
	}
	src.add("QuantTekel (Quant Tekel)", "QT Instant", quantTekel)
	src.add("QuantTekel (Quant Tekel)", "QT Classic", quantTekel)

	src.add("FTMO", "FTMO Challenge (Standard)", domain.PropFirmRuleSet{
		DailyLossLimit:     0.05,
		MaxDrawdown:        0.10,
		ProfitTargetPhase1: 0.10,
		ProfitTargetPhase2: 0.05,
		MinTradingDays:     10,
		ConsistencyRule:    0.30,
		Leverage:           map[string]int{"forex": 100, "indices": 100, "commodities": 100},
		NewsTrading:        domain.NewsTradingForbidden,
		WeekendHolding:     domain.WeekendHoldingNotAllowed,
	})

	return src
}

func (s *StaticRuleSource) add(firm, accountType string, rules domain.PropFirmRuleSet) {
	rules.FirmName = firm
	rules.AccountType = accountType
	s.rules[ruleKey(firm, accountType)] = rules
}

func (s *StaticRuleSource) Resolve(firmName, accountType string) (domain.PropFirmRuleSet, bool) {
	rules, ok := s.rules[ruleKey(firmName, accountType)]
	if !ok {
		return s.conservative, false
	}
	return rules, true
}

func (s *StaticRuleSource) Default() domain.PropFirmRuleSet {
	return s.conservative
}

func ruleKey(firm, accountType string) string {
	return strings.TrimSpace(firm) + "|" + strings.TrimSpace(accountType)
}
