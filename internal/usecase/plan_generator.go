package usecase

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mainhusharm/windsurf/internal/domain"
)

const (
	defaultAccountSize  = 10000.0
	defaultTradesPerDay = "1-2"
	placeholderAsset    = "Any selected asset"

	// Fixed assumption used for phase projections.
	assumedWinRate = 0.60
	// Projection fallback when the expected daily P&L is not positive.
	fallbackDaysToPass = 30
)

type experienceTier struct {
	TradeRiskPct  float64
	MinRiskReward float64
}

var experienceTiers = map[domain.Experience]experienceTier{
	domain.ExperienceBeginner:     {TradeRiskPct: 0.02, MinRiskReward: 2.0},
	domain.ExperienceIntermediate: {TradeRiskPct: 0.025, MinRiskReward: 2.5},
	domain.ExperienceAdvanced:     {TradeRiskPct: 0.03, MinRiskReward: 3.0},
}

var cryptoMultipliers = map[string]float64{
	"BTC": 1.0, "ETH": 1.1, "SOL": 1.3, "XRP": 1.2,
	"ADA": 1.2, "DOGE": 1.5, "AVAX": 1.3, "SHIB": 1.8,
}

var forexMultipliers = map[string]float64{
	"EURUSD": 1.0, "GBPUSD": 1.1, "USDJPY": 1.0,
	"XAU/USD": 1.2, "USOIL": 1.3, "US30": 1.1,
}

// GeneratePlan turns a questionnaire and a resolved rulebook into a risk
// plan. It is a total function: malformed numerics coerce to defaults and
// every denominator is guarded, so it never fails.
func GeneratePlan(q domain.Questionnaire, rules domain.PropFirmRuleSet, usedDefault bool) domain.RiskPlan {
	accountSize := coerceFloat(q.AccountSize, defaultAccountSize)
	accountEquity := coerceFloat(q.AccountEquity, accountSize)
	hasAccount := strings.EqualFold(strings.TrimSpace(q.HasAccount), "yes")

	workingCapital := accountSize
	if hasAccount {
		workingCapital = accountEquity
	}

	experience := normalizeExperience(q.Experience)
	tier := experienceTiers[experience]

	tradesPerDay := strings.TrimSpace(q.TradesPerDay)
	if tradesPerDay == "" {
		tradesPerDay = defaultTradesPerDay
	}
	tradeCount := parseTradeCount(tradesPerDay)

	dailyBudget := workingCapital * rules.DailyLossLimit
	nominalRisk := workingCapital * tier.TradeRiskPct
	effectiveRisk := math.Min(nominalRisk, dailyBudget/float64(tradeCount))

	slots := buildAssetSlots(q.CryptoAssets, q.ForexAssets)

	risks := make([]float64, tradeCount)
	totalRisk := 0.0
	for i := 0; i < tradeCount; i++ {
		risk := effectiveRisk
		if len(slots) > 0 {
			slot := slots[i%len(slots)]
			risk *= assetMultiplier(slot.class, slot.asset)
		}
		risks[i] = risk
		totalRisk += risk
	}

	// Volatility multipliers can push the sum past the daily cap; scale the
	// whole schedule back under it rather than reporting a plan that busts
	// the firm's limit.
	if totalRisk > dailyBudget && totalRisk > 0 {
		scale := dailyBudget / totalRisk
		totalRisk = 0
		for i := range risks {
			risks[i] *= scale
			totalRisk += risks[i]
		}
	}

	allocations := make([]domain.TradeAllocation, tradeCount)
	totalTarget := 0.0
	roundedRisk := 0.0
	for i := 0; i < tradeCount; i++ {
		asset := placeholderAsset
		class := domain.AssetClass("")
		if len(slots) > 0 {
			slot := slots[i%len(slots)]
			asset = slot.asset
			class = slot.class
		}

		risk := floor2(risks[i])
		target := round2(risk * tier.MinRiskReward)
		totalTarget += target
		roundedRisk += risk

		allocations[i] = domain.TradeAllocation{
			Label:           fmt.Sprintf("trade-%d", i+1),
			Asset:           asset,
			AssetClass:      class,
			RiskAmount:      risk,
			ProfitTarget:    target,
			RiskRewardRatio: tier.MinRiskReward,
		}
	}

	expectedDailyPnL := totalTarget*assumedWinRate - roundedRisk*(1-assumedWinRate)
	phase1Target := workingCapital * rules.ProfitTargetPhase1
	phase2Target := workingCapital * rules.ProfitTargetPhase2

	compliant := roundedRisk <= dailyBudget+1e-9
	status := domain.ComplianceNeedsAdjustment
	if compliant {
		status = domain.ComplianceCompliant
	}

	return domain.RiskPlan{
		UserProfile: domain.PlanUserProfile{
			AccountEquity:  accountEquity,
			AccountSize:    accountSize,
			WorkingCapital: workingCapital,
			TradesPerDay:   tradesPerDay,
			TradingSession: q.TradingSession,
			CryptoAssets:   q.CryptoAssets,
			ForexAssets:    q.ForexAssets,
			HasAccount:     hasAccount,
			Experience:     experience,
		},
		PropFirm: domain.PlanFirmAnalysis{
			FirmName:        q.PropFirm,
			AccountType:     q.AccountType,
			Rules:           rules,
			UsedDefaultRule: usedDefault,
		},
		RiskParameters: domain.PlanRiskParams{
			MaxDailyRisk:    round2(dailyBudget),
			MaxDailyRiskPct: round2(rules.DailyLossLimit * 100),
			RiskPerTrade:    round2(effectiveRisk),
			RiskPerTradePct: round2(safePct(effectiveRisk, workingCapital)),
			MinRiskReward:   tier.MinRiskReward,
			TotalDailyRisk:  round2(roundedRisk),
			SafetyMargin:    round2(dailyBudget - roundedRisk),
			MaxDrawdown:     round2(workingCapital * rules.MaxDrawdown),
		},
		Projections: domain.PlanProjections{
			WinRateAssumption:    assumedWinRate,
			DailyProfitPotential: round2(totalTarget),
			DailyRiskExposure:    round2(roundedRisk),
			ExpectedDailyPnL:     round2(expectedDailyPnL),
			ProfitTargetPhase1:   round2(phase1Target),
			ProfitTargetPhase2:   round2(phase2Target),
			DaysToPassPhase1:     daysToPass(phase1Target, expectedDailyPnL, rules.MinTradingDays),
			DaysToPassPhase2:     daysToPass(phase2Target, expectedDailyPnL, rules.MinTradingDays),
		},
		Trades: allocations,
		Compliance: domain.PlanCompliance{
			DailyRiskCompliant: compliant,
			OverallStatus:      status,
		},
	}
}

type assetSlot struct {
	asset string
	class domain.AssetClass
}

func buildAssetSlots(crypto, forex []string) []assetSlot {
	slots := make([]assetSlot, 0, len(crypto)+len(forex))
	for _, asset := range crypto {
		slots = append(slots, assetSlot{asset: asset, class: domain.AssetClassCrypto})
	}
	for _, asset := range forex {
		slots = append(slots, assetSlot{asset: asset, class: domain.AssetClassForex})
	}
	return slots
}

func assetMultiplier(class domain.AssetClass, asset string) float64 {
	if class == domain.AssetClassCrypto {
		if m, ok := cryptoMultipliers[asset]; ok {
			return m
		}
		return 1.4
	}
	if m, ok := forexMultipliers[asset]; ok {
		return m
	}
	return 1.2
}

// parseTradeCount reads the questionnaire's trades-per-day answer as an
// upper bound: "a-b" counts as b, "n+" as n+2 and a bare integer as itself.
func parseTradeCount(raw string) int {
	raw = strings.TrimSpace(raw)

	var count int
	switch {
	case strings.Contains(raw, "+"):
		n, err := strconv.Atoi(strings.TrimSpace(strings.ReplaceAll(raw, "+", "")))
		if err != nil {
			return parseTradeCount(defaultTradesPerDay)
		}
		count = n + 2
	case strings.Contains(raw, "-"):
		parts := strings.SplitN(raw, "-", 2)
		n, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return parseTradeCount(defaultTradesPerDay)
		}
		count = n
	default:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return parseTradeCount(defaultTradesPerDay)
		}
		count = n
	}

	if count < 1 {
		return 1
	}
	return count
}

func normalizeExperience(raw string) domain.Experience {
	exp := domain.Experience(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := experienceTiers[exp]; !ok {
		return domain.ExperienceBeginner
	}
	return exp
}

func daysToPass(target, expectedDailyPnL float64, minTradingDays int) int {
	days := fallbackDaysToPass
	if expectedDailyPnL > 0 {
		days = int(math.Ceil(target / expectedDailyPnL))
	}
	if days < minTradingDays {
		return minTradingDays
	}
	return days
}

func coerceFloat(v any, fallback float64) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case json.Number:
		if f, err := val.Float64(); err == nil {
			return f
		}
		return fallback
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			return f
		}
		return fallback
	default:
		return fallback
	}
}

func safePct(part, whole float64) float64 {
	if math.Abs(whole) < 1e-9 {
		return 0
	}
	return part / whole * 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func floor2(v float64) float64 {
	return math.Floor(v*100) / 100
}
