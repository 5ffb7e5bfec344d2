package systems

import (
	"fmt"
	"image/color"

	"github.com/decker502/scorecalc/pkg/components"
	"github.com/decker502/scorecalc/pkg/config"
	"github.com/decker502/scorecalc/pkg/ecs"
	"github.com/decker502/scorecalc/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	pickupColor     = color.RGBA{R: 80, G: 200, B: 255, A: 255}
	playerLineColor = color.RGBA{R: 255, G: 255, B: 255, A: 80}
)

const (
	pickupPopInTime = 0.3 // 道具出现时的弹出时长（秒）
	pickupFadeTime  = 1.5 // 道具消失前的淡出时长（秒）
	pickupMinAlpha  = 0.3
)

// PickupRenderSystem 绘制跑道上的倍率道具和玩家位置线
type PickupRenderSystem struct {
	entityManager     *ecs.EntityManager
	defaultMultiplier int // 值为 0 的道具显示的倍率
}

// NewPickupRenderSystem 创建道具渲染系统
func NewPickupRenderSystem(em *ecs.EntityManager, defaultMultiplier int) *PickupRenderSystem {
	return &PickupRenderSystem{
		entityManager:     em,
		defaultMultiplier: defaultMultiplier,
	}
}

// Draw 绘制所有未被拾取的道具
func (s *PickupRenderSystem) Draw(screen *ebiten.Image) {
	vector.StrokeLine(screen, config.PlayerX, config.LaneY-40, config.PlayerX, config.LaneY+40, 2, playerLineColor, false)

	entities := ecs.GetEntitiesWith2[*components.MultiplierPickupComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		pickup, _ := ecs.GetComponent[*components.MultiplierPickupComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if pickup.Consumed {
			continue
		}

		scale, alpha := 1.0, 1.0
		if lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id); ok {
			scale, alpha = PickupAppearance(lifetime)
		}

		size := float32(config.PickupSize * scale)
		// color.RGBA 为预乘 alpha，淡出时四个通道一起缩放
		clr := color.RGBA{
			R: uint8(float64(pickupColor.R) * alpha),
			G: uint8(float64(pickupColor.G) * alpha),
			B: uint8(float64(pickupColor.B) * alpha),
			A: uint8(float64(pickupColor.A) * alpha),
		}
		vector.DrawFilledRect(screen, float32(pos.X)-size/2, float32(pos.Y)-size/2, size, size, clr, false)
		ebitenutil.DebugPrintAt(screen, s.pickupLabel(pickup), int(pos.X)-8, int(pos.Y)-int(config.PickupSize))
	}
}

// pickupLabel 返回道具上方显示的倍率文本
func (s *PickupRenderSystem) pickupLabel(pickup *components.MultiplierPickupComponent) string {
	value := pickup.Value
	if value == 0 {
		value = s.defaultMultiplier
	}
	return fmt.Sprintf("x%d", value)
}

// PickupAppearance 根据道具存活时间计算绘制缩放和透明度
// 出现时用 EaseOutCubic 从 0 弹出到原始大小，消失前用 EaseInQuad 淡出
func PickupAppearance(lifetime *components.LifetimeComponent) (scale, alpha float64) {
	scale = utils.EaseOutCubic(lifetime.CurrentLifetime / pickupPopInTime)

	alpha = 1.0
	if lifetime.MaxLifetime > 0 {
		remaining := lifetime.MaxLifetime - lifetime.CurrentLifetime
		if remaining < pickupFadeTime {
			progress := 1 - remaining/pickupFadeTime
			alpha = utils.Lerp(1.0, pickupMinAlpha, utils.EaseInQuad(progress))
		}
	}
	return scale, alpha
}
