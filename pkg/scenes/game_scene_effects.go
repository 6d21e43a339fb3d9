package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/starlaser/pkg/components"
	"github.com/gonewx/starlaser/pkg/config"
	"github.com/gonewx/starlaser/pkg/ecs"
	"github.com/gonewx/starlaser/pkg/entities"
	"github.com/gonewx/starlaser/pkg/game"
	"github.com/gonewx/starlaser/pkg/systems"
	"github.com/gonewx/starlaser/pkg/types"
	"github.com/gonewx/starlaser/pkg/utils"
)

const (
	// ExplosionDuration 命中爆炸持续时间（秒）
	ExplosionDuration = 0.35
	// explosionRadiusScale 爆炸最大半径相对被击毁实体半宽的倍数
	explosionRadiusScale = 1.5
)

var explosionColors = map[types.ActorKind]color.RGBA{
	types.ActorEnemy:  {R: 255, G: 160, B: 60, A: 255},
	types.ActorPlayer: {R: 120, G: 200, B: 255, A: 255},
}

// effectLayer 命中爆炸效果
// 使用独立的实体管理器，效果实体不会出现在对局的查询中
type effectLayer struct {
	em       *ecs.EntityManager
	lifetime *systems.LifetimeSystem
	config   *config.GameConfig
}

func newEffectLayer(cfg *config.GameConfig) *effectLayer {
	em := ecs.NewEntityManager()
	return &effectLayer{
		em:       em,
		lifetime: systems.NewLifetimeSystem(em),
		config:   cfg,
	}
}

// onHit 订阅 HitBus：在命中位置生成爆炸
func (l *effectLayer) onHit(evt game.HitEvent) {
	source, sprite := types.ActorEnemy, types.SpriteEnemy
	if evt.Kind == game.HitPlayer {
		source, sprite = types.ActorPlayer, types.SpritePlayer
	}
	halfW, _ := l.config.HalfExtents(sprite)
	_, _ = entities.NewExplosionEffect(l.em, source, evt.X, evt.Y, halfW*explosionRadiusScale, ExplosionDuration)
}

// update 推进效果生命周期并释放到期的效果
func (l *effectLayer) update(deltaTime float64) {
	l.lifetime.Update(deltaTime)
	l.em.RemoveMarkedEntities()
}

// count 返回存活的效果数量
func (l *effectLayer) count() int {
	return l.em.Count()
}

// draw 绘制扩张并淡出的圆环
func (l *effectLayer) draw(screen *ebiten.Image) {
	area := l.config.PlayArea()
	ids := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.ExplosionComponent,
		*components.LifetimeComponent,
	](l.em)

	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](l.em, id)
		explosion, _ := ecs.GetComponent[*components.ExplosionComponent](l.em, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](l.em, id)

		p := lifetime.Progress()
		c := explosionColors[explosion.Source]
		c.A = uint8(utils.Lerp(255, 0, utils.EaseInQuad(p)))

		sx, sy := utils.WorldToScreen(pos.X, pos.Y, area.Width, area.Height)
		radius := float32(explosion.MaxRadius * utils.EaseOutCubic(p))
		vector.StrokeCircle(screen, float32(sx), float32(sy), radius, 2, c, true)
	}
}
